package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// commandSchema описывает допустимую форму сообщения клиента до разбора в ClientCommand.
// Содержимое payload проверяет хендлер конкретного действия.
const commandSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["action"],
  "properties": {
    "token":  {"type": "string"},
    "action": {"type": "string", "pattern": "^[A-Za-z_]{1,32}$"},
    "payload": {
      "oneOf": [
        {"type": "null"},
        {"type": "object"}
      ]
    }
  },
  "additionalProperties": false
}`

var clientCommandSchema = jsonschema.MustCompileString("client_command.schema.json", commandSchema)

// ValidateClientCommand проверяет сырое сообщение по схеме.
func ValidateClientCommand(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("malformed command: %w", err)
	}
	if err := clientCommandSchema.Validate(v); err != nil {
		return fmt.Errorf("command rejected by schema: %w", err)
	}
	return nil
}

// DecodeClientCommand валидирует и разбирает сообщение клиента.
func DecodeClientCommand(raw []byte) (ClientCommand, error) {
	var cmd ClientCommand
	if err := ValidateClientCommand(raw); err != nil {
		return cmd, err
	}
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return cmd, fmt.Errorf("decode command: %w", err)
	}
	return cmd, nil
}
