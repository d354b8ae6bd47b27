package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LockedMarker terminates room registry parsing; rooms listed after it
// are administratively unavailable and never reported
const LockedMarker = "Locked:"

// RoomList is the canonical room registry: an ordered list of room
// names with a membership index for occupancy lookups
type RoomList struct {
	rooms []string
	index map[string]struct{}
}

// NewRoomList builds a registry from an ordered list of room names
func NewRoomList(rooms []string) *RoomList {
	l := &RoomList{
		rooms: make([]string, 0, len(rooms)),
		index: make(map[string]struct{}, len(rooms)),
	}
	for _, room := range rooms {
		if _, seen := l.index[room]; seen {
			continue
		}
		l.rooms = append(l.rooms, room)
		l.index[room] = struct{}{}
	}
	return l
}

// ReadRoomList parses a registry, one room name per line. Blank lines
// are dropped and parsing stops at the first line containing the
// locked marker.
func ReadRoomList(r io.Reader) (*RoomList, error) {
	var rooms []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, LockedMarker) {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rooms = append(rooms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading room registry: %w", err)
	}
	return NewRoomList(rooms), nil
}

// LoadRoomList reads the registry file at the given path
func LoadRoomList(path string) (*RoomList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open room registry %s: %w", path, err)
	}
	defer f.Close()
	return ReadRoomList(f)
}

// Rooms returns the registry rooms in their original order
func (l *RoomList) Rooms() []string {
	rooms := make([]string, len(l.rooms))
	copy(rooms, l.rooms)
	return rooms
}

// Contains reports whether the registry lists the given room
func (l *RoomList) Contains(room string) bool {
	_, ok := l.index[room]
	return ok
}

// Len returns the number of registry rooms
func (l *RoomList) Len() int {
	return len(l.rooms)
}
