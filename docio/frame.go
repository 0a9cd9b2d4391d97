package docio

import (
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

func parseVoxelsDict(data map[string]any, palette *scene.Palette) []scene.DictEntry {
	entries := make([]scene.DictEntry, 0, len(data))
	for key, value := range data {
		entries = append(entries, scene.DictEntry{
			Key:   key,
			Pos:   parseVec3(key),
			Value: parseVoxelValue(value, palette),
		})
	}
	return entries
}

func parseVoxelsList(data []any, palette *scene.Palette) []scene.ListEntry {
	entries := make([]scene.ListEntry, 0, len(data))
	for _, item := range data {
		entries = append(entries, scene.ListEntry{Value: parseVoxelValue(item, palette)})
	}
	return entries
}

func parseVoxelsGrid(data []any, palette *scene.Palette) [][][]scene.VoxelValue {
	grid := make([][][]scene.VoxelValue, 0, len(data))
	for _, layerAny := range data {
		layerData, _ := layerAny.([]any)
		layer := make([][]scene.VoxelValue, 0, len(layerData))
		for _, rowAny := range layerData {
			rowData, _ := rowAny.([]any)
			row := make([]scene.VoxelValue, 0, len(rowData))
			for _, cell := range rowData {
				row = append(row, parseVoxelValue(cell, palette))
			}
			layer = append(layer, row)
		}
		grid = append(grid, layer)
	}
	return grid
}

func parseLightEmissionDict(data map[string]any) map[[3]int]scene.LightValue {
	result := make(map[[3]int]scene.LightValue, len(data))
	for key, value := range data {
		v, ok := parseVec3String(key)
		if !ok {
			continue
		}
		result[v] = parseLightValue(value)
	}
	return result
}

func parseVec3String(s string) ([3]int, bool) {
	v, ok := vecspace.ParseString(s)
	if !ok {
		return [3]int{}, false
	}
	return vecspace.TruncInt(v), true
}
