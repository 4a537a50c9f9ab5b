// Package layout maps desks to canonical 2D map coordinates.
//
// Coordinates live in a 1200x848 viewBox. Registered floors carry hand-tuned
// positions traced from the floor plans; anything else falls back to a
// synthetic grid so every desk is always renderable.
package layout

import (
	"fmt"
	"strconv"
)

const (
	ViewBoxWidth  = 1200
	ViewBoxHeight = 848
)

// ViewBox is the SVG viewBox attribute all registered coordinates live in.
func ViewBox() string {
	return fmt.Sprintf("0 0 %d %d", ViewBoxWidth, ViewBoxHeight)
}

// Grid fallback parameters.
const (
	gridBase   = 100
	gridStride = 50
	gridCols   = 10
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Registry struct {
	floors map[int]map[string]Position
}

func NewRegistry() *Registry {
	return &Registry{
		floors: map[int]map[string]Position{
			1: floor1Layout(),
			3: floor3Layout(),
		},
	}
}

// PositionOf returns the registered coordinate for (floorNumber, deskNumber),
// or a deterministic grid position derived from the desk number's numeric
// suffix when the pair is not registered.
func (r *Registry) PositionOf(floorNumber int, deskNumber string) Position {
	if floor, ok := r.floors[floorNumber]; ok {
		if pos, ok := floor[deskNumber]; ok {
			return pos
		}
	}
	return defaultPosition(deskNumber)
}

// Registered reports whether the floor has a hand-tuned layout.
func (r *Registry) Registered(floorNumber int) bool {
	_, ok := r.floors[floorNumber]
	return ok
}

func defaultPosition(deskNumber string) Position {
	n := numericSuffix(deskNumber)
	return Position{
		X: float64(gridBase + (n%gridCols)*gridStride),
		Y: float64(gridBase + (n/gridCols)*gridStride),
	}
}

func numericSuffix(deskNumber string) int {
	digits := make([]byte, 0, len(deskNumber))
	for i := 0; i < len(deskNumber); i++ {
		if deskNumber[i] >= '0' && deskNumber[i] <= '9' {
			digits = append(digits, deskNumber[i])
		}
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}

// Floor 1, 74 desks. Source image 3509x2481 px, scaled into the viewBox
// (svgX = x/3509*1200, svgY = y/2481*848).
func floor1Layout() map[string]Position {
	return map[string]Position{
		"1": {635.3, 101.5}, "2": {635.3, 132.0}, "3": {658.0, 101.5}, "4": {658.0, 132.0},
		"5": {721.1, 101.5}, "6": {721.1, 132.0}, "7": {744.5, 101.5}, "8": {744.5, 132.0},
		"9": {803.8, 101.5}, "10": {803.8, 132.0}, "11": {827.6, 101.5}, "12": {827.6, 132.0},
		"13": {884.0, 101.5}, "14": {884.0, 132.0}, "15": {909.6, 101.5}, "16": {909.6, 132.0},
		"17": {948.2, 277.6}, "18": {980.6, 277.6}, "19": {1013.1, 277.6},
		"20": {948.2, 302.3}, "21": {980.6, 301.4}, "22": {1013.1, 302.3},
		"23": {948.2, 366.8}, "24": {980.6, 366.8}, "25": {1013.1, 366.8},
		"26": {948.2, 391.4}, "27": {980.6, 391.4}, "28": {1013.1, 391.4},
		"29": {980.6, 457.2}, "30": {1013.1, 457.2}, "31": {980.6, 481.9}, "32": {1013.1, 481.9},
		"33": {980.6, 541.6}, "34": {1013.1, 541.6}, "35": {980.6, 566.5}, "36": {1013.1, 566.5},
		"37": {980.6, 631.7}, "38": {1013.1, 631.7}, "39": {980.6, 657.2}, "40": {1013.1, 657.2},
		"41": {885.1, 740.9}, "42": {885.1, 773.4}, "43": {846.3, 740.9}, "44": {846.3, 773.4},
		"45": {823.8, 740.9}, "46": {825.6, 773.4}, "47": {763.4, 740.9}, "48": {761.6, 773.4},
		"49": {743.6, 740.9}, "50": {743.6, 773.4}, "51": {678.7, 740.9}, "52": {679.6, 773.4},
		"53": {659.8, 740.9}, "54": {659.8, 773.4},
		"55": {534.5, 657.2}, "56": {567.0, 657.2}, "57": {534.5, 631.5}, "58": {567.0, 631.5},
		"59": {534.5, 566.5}, "60": {567.0, 566.5}, "61": {534.5, 541.6}, "62": {567.0, 541.6},
		"63": {534.5, 472.5}, "64": {567.0, 472.5}, "65": {534.5, 447.9}, "66": {567.0, 447.9},
		"67": {534.5, 384.4}, "68": {567.0, 384.3}, "69": {534.5, 359.5}, "70": {567.0, 359.5},
		"71": {534.5, 294.1}, "72": {567.0, 294.1}, "73": {534.5, 270.3}, "74": {567.0, 270.4},
	}
}

// Floor 3, 80 desks.
func floor3Layout() map[string]Position {
	return map[string]Position{
		"1": {541.4, 92.1}, "2": {541.4, 126.6}, "3": {567.7, 92.1}, "4": {567.4, 126.6},
		"5": {621.5, 92.1}, "6": {621.5, 126.6}, "7": {648.1, 92.1}, "8": {646.3, 126.6},
		"9": {706.7, 92.1}, "10": {706.7, 126.6}, "11": {731.3, 92.1}, "12": {731.3, 126.6},
		"13": {788.3, 92.1}, "14": {788.3, 126.6}, "15": {813.9, 92.1}, "16": {812.1, 126.6},
		"17": {850.9, 267.5}, "18": {884.2, 267.5}, "19": {915.7, 267.5},
		"20": {850.9, 293.2}, "21": {884.2, 293.2}, "22": {915.7, 293.2},
		"23": {850.9, 357.6}, "24": {884.2, 357.6}, "25": {915.7, 357.6},
		"26": {850.9, 381.5}, "27": {884.2, 381.5}, "28": {915.7, 381.5},
		"29": {850.9, 442.2}, "30": {884.2, 442.2}, "31": {915.7, 442.2},
		"32": {850.9, 472.0}, "33": {884.2, 472.0}, "34": {915.7, 472.0},
		"35": {876.9, 530.8}, "36": {910.3, 530.8}, "37": {876.9, 556.5}, "38": {910.3, 556.5},
		"39": {876.9, 620.2}, "40": {910.3, 620.2}, "41": {876.9, 644.6}, "42": {910.3, 644.6},
		"43": {897.7, 696.8}, "44": {896.8, 728.3}, "45": {895.9, 761.7},
		"46": {870.9, 696.8}, "47": {870.9, 728.3}, "48": {870.9, 761.7},
		"49": {807.6, 722.9}, "50": {807.6, 755.4}, "51": {781.3, 722.9}, "52": {781.3, 755.4},
		"53": {554.6, 722.9}, "54": {554.6, 755.4}, "55": {528.7, 722.9}, "56": {528.7, 755.4},
		"57": {468.9, 695.9}, "58": {468.9, 730.1}, "59": {468.9, 760.8},
		"60": {442.3, 695.9}, "61": {442.3, 730.1}, "62": {442.3, 760.8},
		"63": {438.1, 644.6}, "64": {472.3, 644.6}, "65": {438.1, 620.2}, "66": {472.3, 620.2},
		"67": {438.1, 556.5}, "68": {472.3, 556.5}, "69": {502.1, 556.5},
		"70": {438.1, 530.8}, "71": {472.3, 530.8}, "72": {502.1, 530.8},
		"73": {438.1, 472.0}, "74": {472.3, 472.0}, "75": {438.1, 445.5}, "76": {472.3, 445.5},
		"77": {438.1, 377.4}, "78": {472.3, 377.4}, "79": {438.1, 352.7}, "80": {472.3, 352.7},
	}
}
