// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	_ "embed"
	"math/rand"
	"strings"

	"github.com/finnbear/moderation"
)

//go:embed tower-names.txt
var towerNamesRaw string

var towerNames = strings.Split(strings.TrimSpace(towerNamesRaw), "\n")

// towerName draws a tower name. A caller-supplied label is prefixed
// after moderation: inappropriate labels are censored, not rejected,
// so placement counts never depend on label content.
func towerName(r *rand.Rand, label string) (name string) {
	for name == "" {
		name = towerNames[r.Intn(len(towerNames))]
	}
	name += " tower"

	if label != "" {
		if moderation.Scan(label).Is(moderation.Inappropriate) {
			label, _ = moderation.Censor(label, moderation.Inappropriate)
		}
		name = label + " " + name
	}
	return
}
