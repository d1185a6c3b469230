// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gm20b"
	"github.com/gogpu/gm20b/regs"
)

// Macro RAM capacities, in words.
const (
	macroCodeWords     = 0x800
	macroPositionCount = 0x80
)

// macroLoadCode stores one instruction word. The cursor wraps past
// the last slot, matching the RAM's address decode; only a pointer
// written out of range is an error.
func (e *Engine) macroLoadCode(word uint32) error {
	if e.macroCodeCursor >= macroCodeWords {
		return fmt.Errorf("engine: macro instruction pointer %#x out of range", e.macroCodeCursor)
	}
	e.macroCode[e.macroCodeCursor] = word
	e.macroCodeCursor = (e.macroCodeCursor + 1) % macroCodeWords
	return nil
}

// macroLoadPosition stores one start address. Unlike the instruction
// RAM the position table does not wrap; overrunning it loses macro
// entry points and is fatal.
func (e *Engine) macroLoadPosition(word uint32) error {
	if e.macroPosCursor >= macroPositionCount {
		return fmt.Errorf("engine: macro position table is full")
	}
	e.macroPositions[e.macroPosCursor] = word
	e.macroPosCursor++
	return nil
}

// macroCallWindow handles the paired call registers: even offsets
// select a macro slot, odd offsets carry the argument and run it.
func (e *Engine) macroCallWindow(offset, arg uint32) error {
	if offset%2 == 0 {
		e.macroSlot = arg
		return nil
	}
	if e.macro == nil {
		gm20b.Logger().Warn("no macro executor bound", "slot", e.macroSlot)
		return nil
	}
	start := e.macroPositions[e.macroSlot%macroPositionCount]
	return e.macro.Execute(e.macroCode[:], start, arg, e.CallMethod)
}

func (e *Engine) semaphore(arg uint32) error {
	info := regs.DecodeSemaphoreInfo(arg)
	switch info.Op {
	case regs.SemaphoreOpRelease:
	case regs.SemaphoreOpCounter:
		if info.CounterType != 0 {
			gm20b.Logger().Warn("unsupported semaphore counter", "type", info.CounterType)
			return nil
		}
	case regs.SemaphoreOpAcquire:
		gm20b.Logger().Warn("semaphore acquire not supported")
		return nil
	default:
		gm20b.Logger().Warn("unknown semaphore op", "op", uint32(info.Op))
		return nil
	}

	// Pending work must be visible before the semaphore is.
	if err := e.Flush(); err != nil {
		return err
	}

	addr := e.registers.SemaphoreAddress()
	payload := e.registers[regs.SemaphorePayload]
	gm20b.Logger().Debug("semaphore release",
		"addr", addr, "payload", payload, "fourWords", info.FourWords)

	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], payload)
	if !info.FourWords {
		return e.mem.Write(addr, word[:])
	}

	// The 16-byte structure is payload, padding, then a 64-bit
	// timestamp. The timestamp lands before the payload so a guest
	// polling the payload never reads a stale timestamp.
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], e.now())
	if err := e.mem.Write(addr+8, ts[:]); err != nil {
		return err
	}
	return e.mem.Write(addr, word[:])
}

// inlineTransfer buffers an inline-to-memory transfer between its
// launch and the arrival of all data words.
type inlineTransfer struct {
	active bool
	buf    []byte
}

func (e *Engine) i2mLaunch() {
	e.i2m.active = true
	e.i2m.buf = e.i2m.buf[:0]
}

func (e *Engine) i2mLoad(words []uint32) error {
	if !e.i2m.active {
		gm20b.Logger().Warn("inline data outside a transfer", "words", len(words))
		return nil
	}
	for _, w := range words {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], w)
		e.i2m.buf = append(e.i2m.buf, b[:]...)
	}

	lineLength := uint64(e.registers[regs.InlineLineLengthIn])
	lineCount := uint64(e.registers[regs.InlineLineCount])
	// Lines arrive word aligned; completion is reached on the word
	// covering the final byte.
	if uint64(len(e.i2m.buf)) < lineLength*lineCount {
		return nil
	}
	e.i2m.active = false

	dest := e.registers.InlineDestAddress()
	pitch := uint64(e.registers[regs.InlineDestPitch])
	for line := uint64(0); line < lineCount; line++ {
		src := e.i2m.buf[line*lineLength : (line+1)*lineLength]
		if err := e.mem.Write(dest+line*pitch, src); err != nil {
			return fmt.Errorf("engine: inline transfer line %d: %w", line, err)
		}
	}
	return nil
}
