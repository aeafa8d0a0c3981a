// Command racpdump decodes hex dumps of Record Access Control Point
// messages, for inspecting captured control-point traffic:
//
//	racpdump 0101 "06 00 01 01"
//	reportStoredRecords/allRecords
//	responseCode/null {RequestOpCode:reportStoredRecords Response:success}
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	racp "github.com/StanfordSpezi/SpeziBluetooth-sub002"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "racpdump <hex>...",
		Short: "Decode Record Access Control Point messages",
		Long: "racpdump decodes one or more hex-encoded control-point messages\n" +
			"(requests or responses) and prints their opcode, operator, and operand.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				m, err := decode(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func decode(arg string) (racp.Message, error) {
	s := strings.NewReplacer(" ", "", ":", "", "0x", "", "0X", "").Replace(arg)
	p, err := hex.DecodeString(s)
	if err != nil {
		return racp.Message{}, err
	}
	var m racp.Message
	if err := m.Unmarshal(p, nil); err != nil {
		return racp.Message{}, err
	}
	return m, nil
}
