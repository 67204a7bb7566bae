package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/profile"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

func newRecordCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "record",
		Short: "Encode and decode var-list records",
	}

	cmd.AddCommand(newRecordEncodeCommand(a), newRecordDecodeCommand(a))

	return cmd
}

func newRecordEncodeCommand(a *app) *cobra.Command {
	var (
		name       string
		namespace  string
		attributes string
		data       string
		raw        bool
		out        string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "encode",
		Short: "Encode one variable as a var-list record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			errs := oops.In("knobctl").With("name", name)

			g, err := guid.Parse(namespace)
			if err != nil {
				return errs.Wrapf(err, "invalid --guid")
			}

			attrs, err := variable.ParseAttributes(attributes)
			if err != nil {
				return errs.Wrapf(err, "invalid --attributes")
			}

			value, err := hex.DecodeString(data)
			if err != nil {
				return errs.Wrapf(err, "invalid --data")
			}

			record, err := varlist.Marshal(variable.Variable{Name: name, GUID: g, Attributes: attrs, Data: value})
			if err != nil {
				return errs.Wrapf(err, "failed to encode record")
			}

			if !raw {
				record = []byte(base64.StdEncoding.EncodeToString(record) + "\n")
			}

			w, closeOut, err := output(cmd, out)
			if err != nil {
				return err
			}

			if _, err := w.Write(record); err != nil {
				_ = closeOut()
				return errs.Wrapf(err, "failed to write record")
			}

			return closeOut()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "variable name")
	cmd.Flags().StringVar(&namespace, "guid", "", "variable namespace GUID")
	cmd.Flags().StringVar(&attributes, "attributes", "NV|BS", "attributes, e.g. NV|BS|RT or 0x7")
	cmd.Flags().StringVar(&data, "data", "", "data as hex")
	cmd.Flags().BoolVar(&raw, "raw", false, "write the binary record instead of Base64")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout by default")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("guid")

	return cmd
}

func newRecordDecodeCommand(a *app) *cobra.Command {
	var isBase64 bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "decode [file]",
		Short: "Decode a sequence of var-list records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			var (
				in  []byte
				err error
			)

			if len(args) == 0 || args[0] == "-" {
				in, err = io.ReadAll(cmd.InOrStdin())
			} else {
				in, err = os.ReadFile(args[0])
			}

			if err != nil {
				return oops.In("knobctl").Wrapf(err, "failed to read records")
			}

			if isBase64 {
				in, err = base64.StdEncoding.DecodeString(string(bytes.TrimSpace(in)))
				if err != nil {
					return oops.In("knobctl").Wrapf(err, "invalid base64")
				}
			}

			vars, err := profile.ParseAll(in)
			if err != nil {
				return oops.In("knobctl").Wrapf(err, "failed to decode records")
			}

			return printYAML(cmd, recordViews(vars))
		},
	}

	cmd.Flags().BoolVar(&isBase64, "base64", false, "input is Base64")

	return cmd
}
