/*
Package eventdispatch provides a concurrency-safe in-process publish/subscribe
dispatcher. Named string events fan out to registered (owner, callback)
bindings while remaining decoupled from how those bindings are discovered.
*/
package eventdispatch
