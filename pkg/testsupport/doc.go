// Package testsupport holds fixtures and golden-file helpers shared by the
// package tests.
package testsupport
