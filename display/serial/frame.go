// This file is part of Pixbridge.
//
// Pixbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pixbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pixbridge.  If not, see <https://www.gnu.org/licenses/>.

package serial

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/pixbridge/curated"
)

const frameSync = 0xa5

// the largest payload accepted from the panel.
const maxPayload = 1024

// commands sent to the panel.
const (
	cmdInfo    = 0x01
	cmdLine    = 0x02
	cmdRefresh = 0x03
)

// commands sent by the panel.
const (
	cmdInfoReply = 0x81
	cmdTouch     = 0x82
)

// Error patterns returned by readFrame().
const (
	BadChecksum = "serial: bad checksum for command %#02x"
	BadPayload  = "serial: bad payload for command %#02x (%d bytes)"
)

func checksum(cmd byte, payload []byte) byte {
	n := len(payload)
	c := cmd ^ byte(n) ^ byte(n>>8)
	for _, b := range payload {
		c ^= b
	}
	return c
}

// appendFrame appends the encoded frame to buf.
func appendFrame(buf []byte, cmd byte, payload []byte) []byte {
	buf = append(buf, frameSync, cmd)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(payload)))
	buf = append(buf, payload...)
	return append(buf, checksum(cmd, payload))
}

// readFrame returns the next frame from the reader. Bytes before the sync
// byte are discarded.
func readFrame(r *bufio.Reader) (byte, []byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, nil, err
		}
		if b == frameSync {
			break
		}
	}

	var hdr [3]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, nil, err
	}
	cmd := hdr[0]
	n := int(binary.LittleEndian.Uint16(hdr[1:]))
	if n > maxPayload {
		return cmd, nil, curated.Errorf(BadPayload, cmd, n)
	}

	payload := make([]byte, n+1)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	if payload[n] != checksum(cmd, payload[:n]) {
		return cmd, nil, curated.Errorf(BadChecksum, cmd)
	}

	return cmd, payload[:n], nil
}
