// Package app hosts the ebiten frontend. Its Game is only compiled with the
// ebiten build tag; headless builds see an empty package.
package app
