package model

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadMtllib parses a .mtl file into a name-keyed material map, grounded
// on objloader::MtllibParser.
func loadMtllib(path string) (map[string]*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	materials := make(map[string]*Material)
	var current *Material

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		key, rest := fields[0], fields[1:]

		if key == "newmtl" {
			if current != nil {
				materials[current.Name] = current
			}
			name := ""
			if len(rest) > 0 {
				name = rest[0]
			}
			current = newMaterial(name)
			continue
		}
		if current == nil {
			continue
		}

		switch key {
		case "Ns", "Ni", "d", "Tr", "illum", "Ka", "Kd", "Ks", "Ke", "Tf":
			malformed := len(rest) == 0
			for _, s := range rest {
				if _, err := strconv.ParseFloat(s, 64); err != nil {
					malformed = true
				}
			}
			if malformed {
				fmt.Fprintf(os.Stderr, "model: %s: skipping malformed %s line\n", path, key)
				continue
			}
		}

		switch key {
		case "Ns":
			current.SpecularExponent = parseFloatField(rest)
		case "Ka":
			current.Ambient = parseVec3Field(rest)
		case "Kd":
			current.Diffuse = parseVec3Field(rest)
		case "Ks":
			current.Specular = parseVec3Field(rest)
		case "Ke":
			current.Emissive = parseVec3Field(rest)
		case "Tf":
			current.TransmissionFilter = parseVec3Field(rest)
		case "Ni":
			current.OpticalDensity = parseFloatField(rest)
		case "d":
			current.Dissolve = parseFloatField(rest)
		case "Tr":
			current.Dissolve = 1 - parseFloatField(rest)
		case "illum":
			current.Illum = int(parseFloatField(rest))
		case "map_Ka":
			current.Maps.Ambient = lastField(rest)
		case "map_Kd":
			current.Maps.Diffuse = lastField(rest)
		case "map_Ks":
			current.Maps.Specular = lastField(rest)
		case "map_Ns":
			current.Maps.SpecularHighlight = lastField(rest)
		case "map_d":
			current.Maps.Alpha = lastField(rest)
		case "map_refl":
			current.Maps.Reflection = lastField(rest)
		case "map_Bump", "bump":
			current.Maps.Bump = lastField(rest)
		}
	}
	if current != nil {
		materials[current.Name] = current
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return materials, nil
}

func parseFloatField(fields []string) float64 {
	if len(fields) == 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(fields[0], 64)
	return v
}

func parseVec3Field(fields []string) [3]float64 {
	var v [3]float64
	for i := 0; i < 3 && i < len(fields); i++ {
		v[i], _ = strconv.ParseFloat(fields[i], 64)
	}
	return v
}

// lastField returns a map_* line's filename, which is the final token —
// texture map lines may carry options (-o, -s, ...) before the filename.
func lastField(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
