package resolver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Corpus is the dataset vocabulary the resolver matches questions against.
// It ships with a built-in default and can be replaced by a YAML pack, so
// vocabulary fixes do not require a rebuild.
type Corpus struct {
	Datasets    []DatasetEntry    `yaml:"datasets"`
	Definitions []DefinitionEntry `yaml:"definitions"`
}

// DatasetEntry documents one dataset and the tokens that point to it.
type DatasetEntry struct {
	Key         string   `yaml:"key"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// DefinitionEntry documents one domain term.
type DefinitionEntry struct {
	Term        string   `yaml:"term"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// LoadCorpus reads a vocabulary pack from path. An empty path returns the
// built-in corpus.
func LoadCorpus(path string) (*Corpus, error) {
	if path == "" {
		return defaultCorpus(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary pack: %w", err)
	}
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse vocabulary pack %s: %w", path, err)
	}
	if len(c.Datasets) == 0 {
		return nil, fmt.Errorf("vocabulary pack %s declares no datasets", path)
	}
	return &c, nil
}

func defaultCorpus() *Corpus {
	return &Corpus{
		Datasets: []DatasetEntry{
			{
				Key:         "collisions",
				Title:       "Collisions routières",
				Description: "Collisions routières géolocalisées avec gravité, heure et condition météo au moment de l'impact.",
				Keywords:    []string{"collision", "accident", "blesse", "gravite", "securite routiere", "intersection"},
			},
			{
				Key:         "service_requests",
				Title:       "Requêtes 311",
				Description: "Requêtes de service non urgentes (nids-de-poule, déneigement, signalisation) avec arrondissement et catégorie.",
				Keywords:    []string{"311", "requete", "plainte", "nid-de-poule", "nid de poule", "deneigement", "signalisation", "travaux"},
			},
			{
				Key:         "transit_stops",
				Title:       "Arrêts de transport collectif",
				Description: "Positions des arrêts de bus et de métro du réseau.",
				Keywords:    []string{"stm", "bus", "metro", "arret", "transport collectif", "station"},
			},
			{
				Key:         "weather",
				Title:       "Observations météo quotidiennes",
				Description: "Température moyenne, précipitations et neige au sol par jour.",
				Keywords:    []string{"meteo", "neige", "pluie", "verglas", "temperature", "froid", "precipitation"},
			},
		},
		Definitions: []DefinitionEntry{
			{
				Term:        "collision grave",
				Description: "Collision de gravité 3 ou plus (blessés graves ou décès).",
				Keywords:    []string{"grave", "mortel", "blesse grave"},
			},
			{
				Term:        "hotspot",
				Description: "Intersection ou zone concentrant un nombre anormal de collisions sur la période.",
				Keywords:    []string{"hotspot", "zone chaude", "point chaud", "pire intersection"},
			},
			{
				Term:        "requête 311",
				Description: "Demande de service citoyenne non urgente adressée à la ville.",
				Keywords:    []string{"311"},
			},
		},
	}
}
