// Package web holds small HTTP helpers shared by the feature handlers,
// mostly optional query parameter parsing.
package web
