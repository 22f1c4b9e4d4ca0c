// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every service method acts on behalf of an authenticated user identified by
// the session's user ID. The acting user is loaded once per request through
// the request cache and checked against the access rules before any store
// mutation.
package app
