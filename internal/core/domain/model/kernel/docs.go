// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and Money amounts. Value objects are immutable, validate
// themselves at construction, and their zero values are invalid.
package kernel
