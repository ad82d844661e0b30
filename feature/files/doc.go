// Package files is the tool layer over the storage gateway.
//
// Every operation returns an Envelope, which serializes to a flat JSON object:
//
//	{"success": true, "filename": "a.txt", "content": "hi", "size": 2}
//	{"success": false, "error": "File 'a.txt' not found"}
//
// Three operations are tools that a model may call by name (read_file,
// write_file, list_files). They are enumerated by Operation and executed
// through a Dispatcher. Delete, stat, share and detailed listing are only
// reachable over HTTP and the CLI.
//
// # HTTP Endpoints
//
//   - GET /api/files : Detailed listing.
//   - POST /api/files : Write {filename, content}.
//   - GET /api/files/{filename} : Read.
//   - DELETE /api/files/{filename} : Delete.
//   - GET /api/stat/{filename} : Metadata.
//   - GET /api/presign/{filename} : Presigned download URL (supports ?ttl=seconds).
//   - GET /api/tools : Tool names and descriptions.
//   - POST /api/tools/{name} : Invoke a tool with the body as arguments.
package files
