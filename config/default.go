// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package config

// DefaultConfig supplies values for keys that are absent from the
// underlying configuration. Defaults are marshaled along with the
// configuration, so that the config command shows the effective
// settings.
type DefaultConfig struct {
	Config
	Defaults Keys
}

// Marshal marshals the underlying configuration and then adds each
// default whose key it did not set.
func (c *DefaultConfig) Marshal(keys Keys) error {
	if err := c.Config.Marshal(keys); err != nil {
		return err
	}
	for key, val := range c.Defaults {
		if _, ok := keys[key]; !ok {
			keys[key] = val
		}
	}
	return nil
}

func (c *DefaultConfig) Value(key string) interface{} {
	if val := c.Config.Value(key); val != nil {
		return val
	}
	return c.Defaults[key]
}
