// Package azapi is the HTTP façade: it builds ARM requests, drives
// pkg/lro's Poller for mutating methods, and renders ARM-shaped errors for
// display. Grounded on azd's pkg/azapi.
package azapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DeploymentOperation names which ARM deployment-family operation produced
// an AzureDeploymentError, so the rendered message can say "deployment
// failed" vs "preview failed" etc.
type DeploymentOperation int

const (
	DeploymentOperationDeploy DeploymentOperation = iota
	DeploymentOperationPreview
	DeploymentOperationWhatIf
)

func (op DeploymentOperation) label() string {
	switch op {
	case DeploymentOperationPreview:
		return "Deployment preview failed"
	case DeploymentOperationWhatIf:
		return "What-if analysis failed"
	default:
		return "Deployment failed"
	}
}

// DeploymentErrorLine is one node of an ARM deployment error's nested
// "details" tree.
type DeploymentErrorLine struct {
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message,omitempty"`
	Target  string                 `json:"target,omitempty"`
	Inner   []*DeploymentErrorLine `json:"details,omitempty"`
}

func (l *DeploymentErrorLine) Error() string {
	switch {
	case l.Code != "" && l.Message != "":
		return l.Code + ": " + l.Message
	case l.Code != "":
		return l.Code
	case l.Message != "":
		return l.Message
	default:
		return "deployment error"
	}
}

// Unwrap exposes nested detail lines so errors.As can walk the whole tree,
// e.g. to find a specific error code anywhere under a top-level failure.
func (l *DeploymentErrorLine) Unwrap() []error {
	if len(l.Inner) == 0 {
		return nil
	}
	out := make([]error, len(l.Inner))
	for i, inner := range l.Inner {
		out[i] = inner
	}
	return out
}

type deploymentErrorEnvelope struct {
	Error *DeploymentErrorLine `json:"error"`
}

// AzureDeploymentError renders an ARM deployment failure's raw JSON error
// document as a human-readable, indented tree, falling back to the raw
// text verbatim when the body isn't valid ARM-error JSON.
type AzureDeploymentError struct {
	Title     string
	Json      string
	Operation DeploymentOperation
	Details   *DeploymentErrorLine
}

// NewAzureDeploymentError parses errorJSON as an ARM error envelope. Title
// is shown verbatim above the rendered tree (or the raw text).
func NewAzureDeploymentError(title string, errorJSON string, op DeploymentOperation) *AzureDeploymentError {
	e := &AzureDeploymentError{Title: title, Json: errorJSON, Operation: op}

	var env deploymentErrorEnvelope
	if json.Unmarshal([]byte(errorJSON), &env) == nil && env.Error != nil {
		e.Details = env.Error
	}
	return e
}

func (e *AzureDeploymentError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\n%s:\n", e.Title)

	if e.Details == nil {
		b.WriteString(e.Json)
		return b.String()
	}

	b.WriteString(e.Operation.label())
	b.WriteString(":\n")
	renderLine(&b, e.Details, 0)
	return b.String()
}

func renderLine(b *strings.Builder, line *DeploymentErrorLine, depth int) {
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), line.Error())
	for _, inner := range line.Inner {
		renderLine(b, inner, depth+1)
	}
}

// Unwrap lets errors.As reach the parsed detail tree directly from the
// top-level AzureDeploymentError.
func (e *AzureDeploymentError) Unwrap() error {
	if e.Details == nil {
		return nil
	}
	return e.Details
}
