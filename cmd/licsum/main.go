/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// licsum prints the checked sum of the byte values of the license text
// embedded in the binary.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/carverauto/licsum/pkg/assets"
	"github.com/carverauto/licsum/pkg/bytesum"
	"github.com/carverauto/licsum/pkg/logger"
	"github.com/carverauto/licsum/pkg/version"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "licsum: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		quiet       = flag.Bool("quiet", false, "suppress structured logs")
		expect      = flag.String("expect", "", "expected sum; exit non-zero on mismatch instead of printing")
		showVersion = flag.Bool("version", false, "print version and exit")
	)

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return nil
	}

	config := logger.DefaultConfig()
	if *quiet {
		config.Level = "disabled"
	}

	if err := logger.Init(config); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.WithComponent("licsum")

	data := assets.License()
	log.Debug().Int("bytes", len(data)).Msg("Summing embedded license")

	result, err := bytesum.Compute(data)
	if err != nil {
		log.Error().Err(err).Msg("Byte sum failed")
		return err
	}

	if *expect != "" {
		want, err := strconv.ParseUint(*expect, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid -expect value %q: %w", *expect, err)
		}

		if !bytesum.Verify(data, want) {
			return fmt.Errorf("sum mismatch: have %s, want %d", result, want)
		}

		log.Info().Str("sum", result).Msg("Sum verified")

		return nil
	}

	if _, err := fmt.Fprintln(os.Stdout, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
