// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/pflag"

	"github.com/baranwa2/RandomWalkGCN/config"
)

// bind makes flag override key when set on the command line.
func bind(c *config.Config, key string, flag *pflag.Flag) {
	if err := c.Viper().BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
