// Package database manages the optional MySQL connection.
//
// Only the db rotation-state backend needs a database; deployments using the
// default file backend never open one. Connect returns a gorm handle with
// conservative pool settings and verifies the connection with a bounded
// ping before handing it out.
package database
