// Package initializer orchestrates project setup: it runs the external init
// command, reconciles the freshly created configuration with the resolved
// metadata, persists it and optionally generates icons.
package initializer
