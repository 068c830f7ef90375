// Package model defines the entry card record and its field-level
// validation rules.
package model
