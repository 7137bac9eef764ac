// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/ybbus/httpretry"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/querybearer/internal/handler/management"
	"github.com/dadrus/querybearer/internal/x/stringx"
)

var errUnexpectedStatus = errors.New("unexpected HTTP status code")

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newHealthCmd())
}

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "health",
		Short:   "Checks the health status of a querybearer deployment",
		Example: "querybearer health -e http://querybearer.local:4457",
		Run: func(cmd *cobra.Command, _ []string) {
			endpointURL, _ := cmd.Flags().GetString("endpoint")
			outputFormat, _ := cmd.Flags().GetString("output")
			retries, _ := cmd.Flags().GetInt("retries")

			if err := checkHealth(cmd.Context(), cmd, endpointURL, outputFormat, retries); err != nil {
				cmd.PrintErrf("%v\n", err)
				os.Exit(-1)
			}
		},
	}

	cmd.PersistentFlags().StringP("endpoint", "e", "", `The base URL of querybearer's management service.
Note: The endpoint URL should point to a single querybearer deployment.
If the endpoint URL points to a Load Balancer, this command will effectively test the Load Balancer.`)
	cmd.PersistentFlags().StringP("output", "o", "text", `The format for the result output.
Can be "json", "text", or "yaml".`)
	cmd.PersistentFlags().IntP("retries", "r", 3, "How often a failed check is repeated before giving up.")

	return cmd
}

func checkHealth(ctx context.Context, cmd *cobra.Command, endpointURL, outputFormat string, retries int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s%s", endpointURL, management.EndpointHealth), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	client := httpretry.NewCustomClient(
		&http.Client{},
		httpretry.WithMaxRetryCount(retries),
		httpretry.WithBackoffPolicy(httpretry.ExponentialBackoff(100*time.Millisecond, 3*time.Second, 0)))

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", errUnexpectedStatus, resp.Status)
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var structuredResponse map[string]any
	if err = json.Unmarshal(rawResp, &structuredResponse); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	switch outputFormat {
	case "json":
		cmd.Println(stringx.ToString(rawResp))
	case "yaml":
		rawYaml, err := yaml.Marshal(structuredResponse)
		if err != nil {
			return fmt.Errorf("failed to convert response to yaml: %w", err)
		}

		cmd.Print(stringx.ToString(rawYaml))
	default:
		cmd.Println(structuredResponse["status"])
	}

	return nil
}
