/*-
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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/opsbridge/snbridge/pkg/models"
)

var (
	errAdapterIDRequired  = errors.New("adapter_id is required")
	errServiceNowRequired = errors.New("servicenow connection config is required")
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// AdapterConfig represents the configuration for one adapter instance.
type AdapterConfig struct {
	AdapterID    string                   `json:"adapter_id"`    // tags events and log lines, e.g. "sn1"
	ListenAddr   string                   `json:"listen_addr"`   // HTTP API, e.g. :8090
	GRPCAddr     string                   `json:"grpc_addr"`     // health endpoint, e.g. :50055
	LogLevel     string                   `json:"log_level"`     // debug, info, warn, error
	DBPath       string                   `json:"db_path"`       // status history store; empty disables it
	PollInterval Duration                 `json:"poll_interval"` // e.g. "30s"
	ServiceNow   *models.ConnectionConfig `json:"servicenow"`
}

func (c *AdapterConfig) Validate() error {
	if c.AdapterID == "" {
		return errAdapterIDRequired
	}

	if c.ServiceNow == nil {
		return errServiceNowRequired
	}

	return c.ServiceNow.Validate()
}
