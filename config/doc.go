// Package config provides configuration loading and validation for batchpipe.
//
// It uses Viper to load an optional config.yml and merges environment
// variables (optionally from a .env file loaded with godotenv) on top.
// Environment variables map to nested keys by splitting on underscores,
// e.g. PIPELINE_STAGE_DELAY overrides pipeline.stage_delay.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.LoadConfig("batchpipe", &cfg)
package config
