// Package logging provides the structured logging interface used by numwords.
// Components log through Logger and Field helpers; ZerologAdapter writes the
// entries as JSON lines with zerolog.
package logging
