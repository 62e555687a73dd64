/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"dirpx.dev/dresponse/adapter"
	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/kind"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
)

func newKindsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "Print every kind with its ordinal, success flag and transport statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := a.load()
			if err != nil {
				return err
			}
			return printDescriptors(a.out, adapter.DescribeAll(m), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		asJSON  bool
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "classify <kind>",
		Short: "Print how one kind resolves",
		Example: `  dresponse classify not_found
  dresponse classify NotFound --explain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kind.Parse(args[0])
			if err != nil {
				return err
			}
			_, m, err := a.load()
			if err != nil {
				return err
			}
			if explain {
				_, err := fmt.Fprintln(a.out, m.Explain(k))
				return err
			}
			return printDescriptors(a.out, []apis.StatusDescriptor{adapter.Describe(k, m)}, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&explain, "explain", false, "show where each status came from")
	return cmd
}

func printDescriptors(w io.Writer, ds []apis.StatusDescriptor, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tORDINAL\tSUCCESS\tHTTP\tGRPC")
	for _, d := range ds {
		fmt.Fprintf(tw, "%s\t%d\t%t\t%d\t%s\n", d.Kind, d.Ordinal, d.Success, d.HTTPStatus, codes.Code(d.GRPCCode))
	}
	return tw.Flush()
}
