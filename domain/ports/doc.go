// Package ports defines the interfaces at the two edges of the bridge.
// Syscaller is the capability pointing into the host, UI is the handler set
// the gateway routes host commands to.
package ports
