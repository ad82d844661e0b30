// Package agent runs a tool-calling conversation against an OpenAI-compatible
// chat completion API.
//
// Each user message may take several completion round trips. Whenever the model
// asks for tools, the calls are executed through the files dispatcher and their
// envelopes are sent back as tool messages. The loop ends with the first plain
// text answer, or with ErrTooManyTurns after Config.MaxTurns completions.
//
// The default endpoint is the Gemini OpenAI compatibility layer; any server that
// speaks the same protocol works by setting AGENT_BASE_URL.
//
// # HTTP Endpoints
//
//   - POST /api/chat : Answer {message} in a fresh session.
package agent
