// Package utils provides common utility functions for the spell miner.
// Its conversion helpers normalize the value shapes SQL drivers hand back
// for read paths that work with generic column maps.
package utils
