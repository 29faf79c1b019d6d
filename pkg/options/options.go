/*
Copyright 2026 Nscale.

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

package options

import (
	"flag"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Options are the flags common to the harness commands.
type Options struct {
	// PropertiesPaths are read in order, later files overriding earlier ones.
	PropertiesPaths []string

	// ZapOptions are bound to the --zap-* flags.
	ZapOptions zap.Options
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringSliceVar(&o.PropertiesPaths, "properties", nil, "Properties files to read configuration from, later files take precedence.")

	zapFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	o.ZapOptions.BindFlags(zapFlags)

	f.AddGoFlagSet(zapFlags)
}

// SetupLogging builds a logger from the --zap-* flags and installs it as the
// global logger.
func (o *Options) SetupLogging() logr.Logger {
	logger := zap.New(zap.UseFlagOptions(&o.ZapOptions))

	log.SetLogger(logger)

	return logger
}
