// Package middleware contains HTTP middleware for the serve command.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header does not match the configured key.
//   - rayid: assigns every request a RayID (UUID), stores it in the Fiber locals
//     under "ray_id" and echoes it in the X-Ray-ID response header.
//
// RayID must be registered first so that auth failures are traceable too.
package middleware
