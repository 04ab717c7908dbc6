package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/azure-tools/armpoller/pkg/azapi"
	"github.com/azure-tools/armpoller/pkg/azsdk"
	"github.com/azure-tools/armpoller/pkg/cloud"
	"github.com/azure-tools/armpoller/pkg/lro"
	"github.com/spf13/cobra"
)

const productToken = "armpoller-cli"

// NewRootCommand builds the armpoller CLI: one request in, one terminal
// resource representation out.
func NewRootCommand() *cobra.Command {
	var (
		method      string
		path        string
		endpoint    string
		apiVersion  string
		bodyFile    string
		resultPath  string
		finalState  string
		frequencyMs int
	)

	rootCmd := &cobra.Command{
		Use:           "armpoller --endpoint https://management.azure.com --method PUT --path /resource",
		Short:         "Send an ARM-style request and drive any long-running operation to completion",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			opts := runOptions{
				method:      method,
				path:        path,
				endpoint:    endpoint,
				apiVersion:  apiVersion,
				bodyFile:    bodyFile,
				resultPath:  resultPath,
				finalState:  finalState,
				frequencyMs: frequencyMs,
			}
			return run(cobraCmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&method, "method", "GET", "HTTP method (GET, PUT, PATCH, POST, DELETE, HEAD)")
	flags.StringVar(&path, "path", "", "request path, relative to --endpoint")
	flags.StringVar(&endpoint, "endpoint", "https://management.azure.com", "ARM endpoint")
	flags.StringVar(&apiVersion, "api-version", "", "api-version query value")
	flags.StringVar(&bodyFile, "body-file", "", "path to a JSON file to send as the request body")
	flags.StringVar(&resultPath, "result-path", "", "JSON pointer key to extract from an Operation-Location final result")
	flags.StringVar(&finalState, "final-state-via", "", "azure-async-operation|location|original-uri|operation-location")
	flags.IntVar(&frequencyMs, "poll-frequency-ms", 0, "fallback poll cadence when no Retry-After header is present")

	return rootCmd
}

type runOptions struct {
	method      string
	path        string
	endpoint    string
	apiVersion  string
	bodyFile    string
	resultPath  string
	finalState  string
	frequencyMs int
}

func run(cobraCmd *cobra.Command, opts runOptions) error {
	endpointURL, err := url.Parse(opts.endpoint)
	if err != nil {
		return fmt.Errorf("invalid --endpoint: %w", err)
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return fmt.Errorf("failed to create credential: %w", err)
	}

	cloudCfg := cloud.AzurePublic()
	factory := azsdk.NewClientOptionsBuilderFactory(nil, productToken, cloudCfg)
	armOpts := factory.NewClientOptionsBuilder().
		WithPerCallPolicy(azsdk.NewMsCorrelationPolicy()).
		BuildArmClientOptions()

	authPolicy := runtime.NewBearerTokenPolicy(cred, []string{azapi.AuthScope(endpointURL)}, nil)
	pipeline := runtime.NewPipeline(
		"armpoller",
		"0.1.0",
		runtime.PipelineOptions{PerRetry: []policy.Policy{authPolicy}},
		&policy.ClientOptions{
			Transport:        armOpts.Transport,
			PerCallPolicies:  armOpts.PerCallPolicies,
			PerRetryPolicies: armOpts.PerRetryPolicies,
			Cloud:            armOpts.Cloud,
		},
	)

	client := azapi.NewClient(azapi.ClientOptions{
		Endpoint:   endpointURL,
		Cloud:      cloudCfg,
		Pipeline:   pipeline,
		APIVersion: opts.apiVersion,
	})

	var body []byte
	if opts.bodyFile != "" {
		body, err = os.ReadFile(opts.bodyFile)
		if err != nil {
			return fmt.Errorf("failed to read --body-file: %w", err)
		}
	}

	pollerOpts, err := buildPollerOptions(opts.finalState, opts.resultPath)
	if err != nil {
		return err
	}

	var pollOpts *lro.PollUntilDoneOptions
	if opts.frequencyMs > 0 {
		pollOpts = &lro.PollUntilDoneOptions{Frequency: time.Duration(opts.frequencyMs) * time.Millisecond}
	}

	resp, err := client.Do(cobraCmd.Context(), azapi.Request{
		Method:        opts.method,
		Path:          opts.path,
		Body:          body,
		PollerOptions: pollerOpts,
		PollOptions:   pollOpts,
	})
	if err != nil {
		return err
	}

	return printResponse(cobraCmd, resp)
}

func buildPollerOptions(finalState, resultPath string) (*lro.NewPollerOptions, error) {
	if finalState == "" && resultPath == "" {
		return nil, nil
	}

	opts := &lro.NewPollerOptions{OperationLocationResultPath: resultPath}
	if finalState != "" {
		via, err := parseFinalStateVia(finalState)
		if err != nil {
			return nil, err
		}
		opts.FinalState = &via
	}
	return opts, nil
}

func parseFinalStateVia(s string) (lro.FinalStateVia, error) {
	switch s {
	case "azure-async-operation":
		return lro.FinalStateAzureAsyncOp, nil
	case "location":
		return lro.FinalStateLocation, nil
	case "original-uri":
		return lro.FinalStateOriginalURI, nil
	case "operation-location":
		return lro.FinalStateOperationLocation, nil
	default:
		return 0, fmt.Errorf("unrecognized --final-state-via %q", s)
	}
}

func printResponse(cobraCmd *cobra.Command, resp *lro.Response) error {
	if len(resp.Body) == 0 {
		fmt.Fprintf(cobraCmd.OutOrStdout(), "%d (no body)\n", resp.StatusCode)
		return nil
	}

	var pretty map[string]any
	if err := json.Unmarshal(resp.Body, &pretty); err != nil {
		fmt.Fprintf(cobraCmd.OutOrStdout(), "%d %s\n", resp.StatusCode, string(resp.Body))
		return nil
	}

	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cobraCmd.OutOrStdout(), "%d\n%s\n", resp.StatusCode, string(out))
	return nil
}
