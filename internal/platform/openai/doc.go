// Package openai provides a generation.TextGenerator backed by the OpenAI
// Chat Completions API, selected with llm.provider = "openai". Each prompt
// is sent as a single user message with SDK retries disabled.
package openai
