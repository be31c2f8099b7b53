// Package config provides configuration loading, merging, and validation
// for go-secret-vault.
//
// Configuration is assembled from multiple sources in the following
// priority order (earlier sources win for fields they set):
//  1. Environment variables
//  2. JSON config file (path taken from the VAULT_CONFIG variable)
//
// The main entry point is [GetConfig]; store.Open and vault handle
// construction both consume the resulting [Config].
package config
