// Package utils provides common utility functions for the invite-tracker application.
// It holds helpers for loose type conversion that don't fit into domain-specific packages.
package utils
