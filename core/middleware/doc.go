// Package middleware groups the Fiber middleware placed in front of the
// storage routes.
//
// # Components
//
//   - rayid: reuses the caller's X-Ray-ID header or generates a UUID, stores it
//     in the "ray_id" local, echoes it on the response and propagates it into the
//     request's user context via logger.ContextWithRayID, so facade log lines and
//     journal entries carry the same id.
//   - auth: rejects requests whose X-API-Key header does not match the configured
//     key with 401. An empty key disables the check.
//
// serve registers rayid first, then the request logger, then auth, leaving
// /swagger/* public.
package middleware
