// Package app contains the core application logic. It defines the main App
// struct, its configuration and the load lifecycle (read the world
// description, build the simulated world, run world plugins, report),
// decoupled from any specific entrypoint like a CLI.
package app
