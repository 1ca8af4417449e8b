// Package domain holds the milestone model, generator configuration, and generated artifacts.
package domain
