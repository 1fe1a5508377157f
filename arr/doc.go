// Package arr implements the request dispatcher shared by the Sonarr,
// Radarr, Readarr and Lidarr clients, together with the endpoints every one
// of those applications exposes.
//
// A Client is bound to one manager instance. It builds URLs of the form
// {host}/api/{version}/{path}, attaches the X-Api-Key header, encodes
// request bodies as JSON and decodes JSON responses:
//
//	c, err := arr.New("http://localhost:7878", "api-key",
//		arr.API{Name: "radarr", Version: "v3", Item: "Movie"}, logger,
//		arr.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		return err
//	}
//
//	status, err := c.GetSystemStatus(ctx)
//
// Resources without a typed method can be reached through Get, Post, Put and
// Delete with any JSON-shaped value:
//
//	var tasks []map[string]any
//	err = c.Get(ctx, "system/task", nil, &tasks)
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError. The status codes 401, 403,
// 404, 405 and 502 unwrap to ErrUnauthorized, ErrAccessRestricted,
// ErrNotFound, ErrMethodNotAllowed and ErrBadGateway. Transport failures and
// timeouts wrap ErrConnection.
//
//	if errors.Is(err, arr.ErrUnauthorized) {
//		// check the API key
//	}
package arr
