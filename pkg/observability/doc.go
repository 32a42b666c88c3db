/*
Package observability turns engine lifecycle hooks into structured logs and lets several
hook sets observe the same session.
*/
package observability
