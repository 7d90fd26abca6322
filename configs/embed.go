package configs

import (
	"bytes"
	_ "embed"

	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
	"go-taskflow/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

// init registers the embedded properties and messages as defaults, so the
// binary runs without a configs directory next to it.
func init() {
	if err := resource.SetDefaults(bytes.NewReader(applicationYAML)); err != nil {
		log.Fatalf("Fail to load embedded properties: %v", err)
	}
	if err := msg.LoadDefaults(bytes.NewReader(messagesYAML)); err != nil {
		log.Fatalf("Fail to load embedded messages: %v", err)
	}
}
