// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"encoding/json"

	"github.com/luxfi/ids"
)

// MarshalWith renders [qset] in the compact debug form
//
//	{"t": threshold, "v": [ "validator", ..., {nested}, ... ]}
//
// with every validator rendered through [format]. The formatter is injected
// so callers can shorten or alias NodeIDs however their surroundings do.
func MarshalWith(qset *QuorumSet, format func(ids.NodeID) string) ([]byte, error) {
	return json.Marshal(debugValue(qset, format))
}

// String renders the debug form with full-length NodeID strings.
func (q *QuorumSet) String() string {
	b, err := MarshalWith(q, ids.NodeID.String)
	if err != nil {
		// Strings, numbers and maps of them always marshal.
		return err.Error()
	}
	return string(b)
}

func debugValue(qset *QuorumSet, format func(ids.NodeID) string) map[string]any {
	entries := make([]any, 0, len(qset.Validators)+len(qset.InnerSets))
	for _, v := range qset.Validators {
		entries = append(entries, format(v))
	}
	for i := range qset.InnerSets {
		entries = append(entries, debugValue(&qset.InnerSets[i], format))
	}
	return map[string]any{
		"t": qset.Threshold,
		"v": entries,
	}
}
