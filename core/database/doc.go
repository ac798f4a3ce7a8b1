// Package database manages the relational store connection.
//
// It wraps GORM connection setup for the two supported drivers: sqlite (the
// default for a single-node gallery deployment) and mysql. The connection is
// created once by the process entry point and injected into every component
// that needs it; no package-level handle exists.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal(err)
//	}
package database
