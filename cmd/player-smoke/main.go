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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/player/pkg/cleanup"
	"github.com/unikorn-cloud/player/pkg/client"
	"github.com/unikorn-cloud/player/pkg/constants"
	"github.com/unikorn-cloud/player/pkg/fixtures"
	"github.com/unikorn-cloud/player/pkg/options"
	"github.com/unikorn-cloud/player/pkg/player"
	"github.com/unikorn-cloud/player/pkg/properties"

	"k8s.io/utils/ptr"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

var errMismatch = errors.New("player does not match")

type smokeOptions struct {
	options.Options

	baseURL         string
	editor          string
	requestLogging  bool
	responseLogging bool
}

func (o *smokeOptions) AddFlags(f *pflag.FlagSet) {
	o.Options.AddFlags(f)

	f.StringVar(&o.baseURL, "base-url", "", "Player service to test, overrides base.url.")
	f.StringVar(&o.editor, "editor", "", "Editor login, defaults to default.supervisor.login.")
	f.BoolVar(&o.requestLogging, "request-logging", false, "Log every request.")
	f.BoolVar(&o.responseLogging, "response-logging", false, "Log response bodies.")
}

func main() {
	var o smokeOptions

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	p, err := properties.Load(o.PropertiesPaths)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// The flag wins over the properties file.
	if level, ok := p.Get(properties.LoggingLevel); ok && !pflag.CommandLine.Changed("zap-log-level") {
		if err := pflag.CommandLine.Set("zap-log-level", level); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	o.SetupLogging()

	logger := log.Log.WithName("init")
	logger.Info("smoke test starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(signals.SetupSignalHandler(), log.Log.WithName("smoke"))

	if err := run(ctx, &o, p); err != nil {
		logger.Error(err, "smoke test failed")
		os.Exit(1)
	}

	logger.Info("smoke test passed")
}

func run(ctx context.Context, o *smokeOptions, p *properties.Properties) error {
	if o.baseURL != "" {
		p.Set(properties.BaseURL, o.baseURL)
	}

	editor := o.editor
	if editor == "" {
		editor = p.GetOrDefault(properties.DefaultSupervisorLogin, "supervisor")
	}

	c, err := player.New(p,
		client.WithLogger(log.FromContext(ctx)),
		client.WithRequestLogging(o.requestLogging || p.GetBool(properties.RequestLogging, false)),
		client.WithResponseLogging(o.responseLogging || p.GetBool(properties.ResponseLogging, false)),
	)
	if err != nil {
		return err
	}

	conventions := p.Conventions()

	tracker := cleanup.New(c, editor, cleanup.WithGoneStatuses(conventions.DeleteMissingStatus))

	if err := cycle(ctx, c, tracker, editor, fixtures.NewGenerator(fixtures.BoundsFromProperties(p))); err != nil {
		// Leave nothing behind even when a step fails.
		if cerr := tracker.Cleanup(ctx); cerr != nil {
			return errors.Join(err, cerr)
		}

		return err
	}

	return nil
}

// cycle runs create, get, update, list and delete in turn.
func cycle(ctx context.Context, c *player.Client, tracker *cleanup.Tracker, editor string, generator *fixtures.Generator) error {
	logger := log.FromContext(ctx)

	request := generator.ValidPlayer()

	createResponse, err := c.CreatePlayer(ctx, editor, request)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	created, err := createResponse.Expect(http.StatusOK)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	tracker.Track(created.PlayerID)

	logger.Info("created player", "id", created.PlayerID, "login", ptr.Deref(created.Login, ""))

	getResponse, err := c.GetPlayer(ctx, ptr.To(created.PlayerID))
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}

	got, err := getResponse.Expect(http.StatusOK)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}

	if ptr.Deref(got.Login, "") != ptr.Deref(request.Login, "") {
		return fmt.Errorf("%w: login %q, expected %q", errMismatch, ptr.Deref(got.Login, ""), ptr.Deref(request.Login, ""))
	}

	age := generator.Bounds().MinAge

	updateResponse, err := c.UpdatePlayer(ctx, editor, created.PlayerID, fixtures.NewPlayer().WithAge(age).Build())
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	updated, err := updateResponse.Expect(http.StatusOK)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	if ptr.Deref(updated.Age, 0) != age {
		return fmt.Errorf("%w: age %d, expected %d", errMismatch, ptr.Deref(updated.Age, 0), age)
	}

	listResponse, err := c.GetAllPlayers(ctx)
	if err != nil {
		return fmt.Errorf("get all: %w", err)
	}

	players, err := listResponse.Expect(http.StatusOK)
	if err != nil {
		return fmt.Errorf("get all: %w", err)
	}

	logger.Info("listed players", "count", len(players.Players))

	if err := tracker.Cleanup(ctx); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	logger.Info("deleted player", "id", created.PlayerID)

	return nil
}
