// Package ankiconnect is a minimal client for the AnkiConnect add-on's
// local HTTP interface. It transports requests and decodes responses; it
// does not decide whether a response means success. That judgement belongs
// to the caller.
package ankiconnect
