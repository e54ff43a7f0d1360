// Package middleware contains HTTP middleware for the inspection API.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: validates the X-API-Key header against server.api_key. Paths listed in
//     Config.Skip (the Swagger UI) bypass the check.
//   - rayid: assigns every request a ray id, stores it under the "ray_id" local
//     for logger.WithRayID and echoes it in the X-Ray-ID response header.
//
// Register rayid first so every log line of a request carries its id.
package middleware
