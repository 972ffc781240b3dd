// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"log/slog"

	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/signal"
)

// Connect connects the signal with the given name of the given sender
// to the slot with the given name of the given receiver. It returns
// the connection, or nil if either of them does not exist, the receiver
// has been destroyed, or the signal and slot types do not match.
func Connect(sender Object, signalName string, receiver Object, slotName string) *signal.Connection {
	if reflectx.IsNil(sender) || reflectx.IsNil(receiver) {
		return nil
	}
	sig := sender.AsObject().Signal(signalName)
	if sig == nil {
		slog.Debug("rtti.Connect: unknown signal", "class", sender.AsObject().class, "signal", signalName)
		return nil
	}
	slot := receiver.AsObject().Slot(slotName)
	if slot == nil {
		slog.Debug("rtti.Connect: unknown slot", "class", receiver.AsObject().class, "slot", slotName)
		return nil
	}
	return sig.ConnectDynamic(slot)
}

// Disconnect disconnects all of the connections of the signal with the
// given name of the given sender.
func Disconnect(sender Object, signalName string) {
	if reflectx.IsNil(sender) {
		return
	}
	if sig := sender.AsObject().Signal(signalName); sig != nil {
		sig.DisconnectAll()
	}
}
