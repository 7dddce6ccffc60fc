package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/models"
)

// severeThreshold marks collisions with serious injuries or worse.
const severeThreshold = 3

type zoneStats struct {
	name    string
	total   int
	severe  int
	hourSum int
}

func (e *Executor) hotspots(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	rows := FilterCollisions(e.snap.Collisions, CollisionPredicate(req.Window, req.Weather))
	tr.Add("filtre des collisions", len(rows), filterExpression("collisions", req.Window, req.Weather))
	base := len(rows)

	groups := map[string]*zoneStats{}
	for _, c := range rows {
		g, ok := groups[c.Intersection]
		if !ok {
			g = &zoneStats{name: c.Intersection}
			groups[c.Intersection] = g
		}
		g.total++
		if c.Severity >= severeThreshold {
			g.severe++
		}
		g.hourSum += c.Hour
	}
	ranked := rankZones(groups, e.cfg.TopZones)
	tr.Add("agrégation par intersection", len(groups),
		fmt.Sprintf("count, graves = count(severity >= %d), mean(hour) par intersection; top %d par count", severeThreshold, e.cfg.TopZones))

	table := models.Table{Columns: []string{"Intersection", "Collisions", "Graves", "Heure moyenne"}}
	for _, g := range ranked {
		meanHour := 0.0
		if g.total > 0 {
			meanHour = float64(g.hourSum) / float64(g.total)
		}
		table.Rows = append(table.Rows, []string{g.name, itoa(g.total), itoa(g.severe), fmt.Sprintf("%.0fh", meanHour)})
	}

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizRankedList, Title: "Intersections les plus touchées", XField: "Intersection", YField: "Collisions"},
		evidence: base,
		base:     base,
	}
	if len(ranked) > 0 {
		out.key = models.KeyMetric{Label: "Collisions au point chaud principal", Value: float64(ranked[0].total), Unit: "collisions"}
	}
	return out
}

// hotspotsWeather answers two shapes of weather question. With a specific
// condition it ranks intersections under that condition; without one it
// breaks collisions down by condition code, with shares computed from the
// captured base count.
func (e *Executor) hotspotsWeather(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	if req.Weather != models.WeatherNone {
		out := e.hotspots(req, tr)
		out.viz.Title = "Intersections les plus touchées sous condition météo"
		return out
	}

	rows := FilterCollisions(e.snap.Collisions, CollisionPredicate(req.Window, models.WeatherNone))
	tr.Add("filtre des collisions", len(rows), filterExpression("collisions", req.Window, models.WeatherNone))
	base := len(rows)

	type condStats struct {
		total  int
		severe int
	}
	byCond := map[dataset.ConditionCode]*condStats{}
	for _, c := range rows {
		s, ok := byCond[c.Condition]
		if !ok {
			s = &condStats{}
			byCond[c.Condition] = s
		}
		s.total++
		if c.Severity >= severeThreshold {
			s.severe++
		}
	}
	tr.Add("répartition par condition météo", len(byCond),
		fmt.Sprintf("part = count(condition) / %d * 100; taux graves = graves / count(condition) * 100", base))

	table := models.Table{Columns: []string{"Condition", "Collisions", "Part (%)", "Graves", "Taux graves (%)"}}
	var topCond dataset.ConditionCode
	var topRate float64
	for _, code := range []dataset.ConditionCode{dataset.CondClear, dataset.CondRain, dataset.CondSnow, dataset.CondIce, dataset.CondOther} {
		s, ok := byCond[code]
		if !ok || s.total == 0 {
			continue
		}
		share := float64(s.total) / float64(base) * 100
		rate := float64(s.severe) / float64(s.total) * 100
		table.Rows = append(table.Rows, []string{
			condLabel(code), itoa(s.total), fmt.Sprintf("%.1f", share), itoa(s.severe), fmt.Sprintf("%.1f", rate),
		})
		if rate > topRate {
			topRate, topCond = rate, code
		}
	}

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizBar, Title: "Collisions par condition météo", XField: "Condition", YField: "Collisions"},
		evidence: base,
		base:     base,
	}
	if topCond != "" {
		out.key = models.KeyMetric{Label: "Taux de collisions graves sous " + condLabel(topCond), Value: topRate, Unit: "%"}
	}
	return out
}

func (e *Executor) trendIncidents(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	days := req.Window.Days()
	current := req.Window
	previous := models.TimeWindow{
		Start: current.Start.AddDate(0, 0, -days),
		End:   current.Start.AddDate(0, 0, -1),
		Label: models.WindowCustom,
	}

	scope := req.Params[models.ParamTrendScope]
	if scope == "" {
		scope = models.TrendScopeBoth
	}

	table := models.Table{Columns: []string{"Segment", "Période courante", "Période précédente", "Écart", "Variation (%)"}}
	var caveats []string
	var currTotal, prevTotal, evidence int

	addSegment := func(label string, curr, prev int) {
		currTotal += curr
		prevTotal += prev
		delta := curr - prev
		pct := "n/d"
		if prev > 0 {
			pct = fmt.Sprintf("%+.1f", float64(delta)/float64(prev)*100)
		} else {
			caveats = append(caveats, fmt.Sprintf("Période précédente vide pour %s; variation non calculable.", strings.ToLower(label)))
		}
		table.Rows = append(table.Rows, []string{label, itoa(curr), itoa(prev), fmt.Sprintf("%+d", delta), pct})
	}

	if scope == models.TrendScopeCollisions || scope == models.TrendScopeBoth {
		curr := FilterCollisions(e.snap.Collisions, CollisionPredicate(current, req.Weather))
		prev := FilterCollisions(e.snap.Collisions, CollisionPredicate(previous, req.Weather))
		tr.Add("collisions période courante", len(curr), filterExpression("collisions", current, req.Weather))
		tr.Add("collisions période précédente", len(prev), filterExpression("collisions", previous, req.Weather))
		addSegment("Collisions", len(curr), len(prev))
		evidence += len(curr)
		appendRisers(&table, risingBoroughs(curr, prev, 4))
	}
	if scope == models.TrendScopeRequests || scope == models.TrendScopeBoth {
		curr := FilterRequests(e.snap.Requests, RequestPredicate(current))
		prev := FilterRequests(e.snap.Requests, RequestPredicate(previous))
		tr.Add("requêtes 311 période courante", len(curr), filterExpression("requetes_311", current, models.WeatherNone))
		tr.Add("requêtes 311 période précédente", len(prev), filterExpression("requetes_311", previous, models.WeatherNone))
		addSegment("Requêtes 311", len(curr), len(prev))
		evidence += len(curr)
	}

	tr.Add("comparaison des périodes", len(table.Rows),
		"variation = (courant - precedent) / precedent * 100; fenêtres de longueur égale, ancrées à la date la plus récente")

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizDelta, Title: "Évolution sur deux périodes égales", XField: "Segment", YField: "Écart"},
		evidence: evidence,
		base:     currTotal,
		caveats:  caveats,
	}
	if prevTotal > 0 {
		out.key = models.KeyMetric{
			Label: "Variation globale",
			Value: float64(currTotal-prevTotal) / float64(prevTotal) * 100,
			Unit:  "%",
		}
	} else if currTotal > 0 {
		out.key = models.KeyMetric{Label: "Incidents période courante", Value: float64(currTotal), Unit: "incidents"}
	}
	if currTotal == 0 && prevTotal == 0 {
		out.table = models.Table{}
	}
	return out
}

type boroughDelta struct {
	name  string
	delta int
}

// risingBoroughs ranks boroughs whose collision count grew between the two
// periods.
func risingBoroughs(curr, prev []dataset.Collision, limit int) []boroughDelta {
	currBy := map[string]int{}
	prevBy := map[string]int{}
	for _, c := range curr {
		if c.Borough != "" {
			currBy[c.Borough]++
		}
	}
	for _, c := range prev {
		if c.Borough != "" {
			prevBy[c.Borough]++
		}
	}
	var risers []boroughDelta
	for name, n := range currBy {
		if d := n - prevBy[name]; d > 0 {
			risers = append(risers, boroughDelta{name, d})
		}
	}
	sort.Slice(risers, func(i, j int) bool {
		if risers[i].delta != risers[j].delta {
			return risers[i].delta > risers[j].delta
		}
		return risers[i].name < risers[j].name
	})
	if len(risers) > limit {
		risers = risers[:limit]
	}
	return risers
}

func appendRisers(table *models.Table, risers []boroughDelta) {
	for _, r := range risers {
		table.Rows = append(table.Rows, []string{
			"↗ " + r.name, "", "", fmt.Sprintf("%+d", r.delta), "",
		})
	}
}

// serviceTypesWeather ranks request categories by over-representation under a
// weather condition, using the day temperature as proxy. Without a condition
// it falls back to a plain frequency ranking.
func (e *Executor) serviceTypesWeather(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	rows := FilterRequests(e.snap.Requests, RequestPredicate(req.Window))
	tr.Add("filtre des requêtes 311", len(rows), filterExpression("requetes_311", req.Window, models.WeatherNone))
	base := len(rows)

	tag := req.Params[models.ParamTempTag]
	if req.Weather == models.WeatherNone && tag == "" {
		return e.serviceTypeFrequency(rows, base, tr)
	}

	var wTotal, oTotal int
	inW := map[string]int{}
	outW := map[string]int{}
	for _, r := range rows {
		if tempTagMatches(tag, req.Weather, r.DayTempC) {
			wTotal++
			inW[r.Category]++
		} else {
			oTotal++
			outW[r.Category]++
		}
	}
	tr.Add("séparation selon le proxy température", wTotal,
		fmt.Sprintf("sous condition = %d, hors condition = %d (totaux capturés avant le calcul par type)", wTotal, oTotal))

	type lifted struct {
		category string
		cw, co   int
		lift     float64
	}
	var ranked []lifted
	if wTotal > 0 && oTotal > 0 {
		for cat, cw := range inW {
			if cw < e.cfg.MinWeatherTypeRows {
				continue
			}
			co := outW[cat]
			lift := (float64(cw) / float64(wTotal)) / ((float64(co) + 1) / float64(oTotal))
			ranked = append(ranked, lifted{cat, cw, co, lift})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].lift != ranked[j].lift {
			return ranked[i].lift > ranked[j].lift
		}
		return ranked[i].cw > ranked[j].cw
	})
	if len(ranked) > e.cfg.TopNeighborhoods {
		ranked = ranked[:e.cfg.TopNeighborhoods]
	}
	tr.Add("indice de surreprésentation par type", len(ranked),
		fmt.Sprintf("indice = (n_condition / %d) / ((n_hors + 1) / %d); minimum %d requêtes sous condition", wTotal, oTotal, e.cfg.MinWeatherTypeRows))

	table := models.Table{Columns: []string{"Type de requête", "Sous condition", "Hors condition", "Indice"}}
	for _, l := range ranked {
		table.Rows = append(table.Rows, []string{l.category, itoa(l.cw), itoa(l.co), fmt.Sprintf("%.2f", l.lift)})
	}

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizBar, Title: "Types de requêtes surreprésentés sous condition", XField: "Type de requête", YField: "Indice"},
		evidence: wTotal,
		base:     base,
	}
	if len(ranked) > 0 {
		out.key = models.KeyMetric{Label: "Indice du type le plus surreprésenté", Value: ranked[0].lift, Unit: "x"}
	}
	return out
}

func (e *Executor) serviceTypeFrequency(rows []dataset.ServiceRequest, base int, tr *models.EvidenceTrace) outcome {
	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Category]++
	}
	type freq struct {
		category string
		n        int
	}
	ranked := make([]freq, 0, len(counts))
	for cat, n := range counts {
		ranked = append(ranked, freq{cat, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].category < ranked[j].category
	})
	if len(ranked) > e.cfg.TopNeighborhoods {
		ranked = ranked[:e.cfg.TopNeighborhoods]
	}
	tr.Add("fréquence par type", len(ranked), fmt.Sprintf("part = count(type) / %d * 100", base))

	table := models.Table{Columns: []string{"Type de requête", "Requêtes", "Part (%)"}}
	for _, f := range ranked {
		table.Rows = append(table.Rows, []string{f.category, itoa(f.n), fmt.Sprintf("%.1f", float64(f.n)/float64(base)*100)})
	}
	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizBar, Title: "Types de requêtes les plus fréquents", XField: "Type de requête", YField: "Requêtes"},
		evidence: base,
		base:     base,
	}
	if len(ranked) > 0 {
		out.key = models.KeyMetric{Label: "Requêtes du type principal", Value: float64(ranked[0].n), Unit: "requêtes"}
	}
	return out
}

var tempBuckets = []struct {
	label    string
	min, max float64
}{
	{"Sous -5 °C", -30, -5},
	{"-5 à 0 °C", -5, 0},
	{"0 à 5 °C", 0, 5},
	{"5 à 15 °C", 5, 15},
	{"Plus de 15 °C", 15, 35},
}

func (e *Executor) serviceTemperature(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	rows := FilterRequests(e.snap.Requests, RequestPredicate(req.Window))
	tr.Add("filtre des requêtes 311", len(rows), filterExpression("requetes_311", req.Window, models.WeatherNone))
	base := len(rows)

	counts := make([]int, len(tempBuckets))
	for _, r := range rows {
		for i, b := range tempBuckets {
			if r.DayTempC > b.min && r.DayTempC <= b.max {
				counts[i]++
				break
			}
		}
	}
	tr.Add("répartition par tranche de température", len(tempBuckets),
		"tranches (°C): [-30,-5], (-5,0], (0,5], (5,15], (15,35]")

	table := models.Table{Columns: []string{"Température", "Requêtes", "Part (%)"}}
	bestIdx, best := -1, 0
	for i, b := range tempBuckets {
		if counts[i] == 0 {
			continue
		}
		table.Rows = append(table.Rows, []string{b.label, itoa(counts[i]), fmt.Sprintf("%.1f", float64(counts[i])/float64(base)*100)})
		if counts[i] > best {
			best, bestIdx = counts[i], i
		}
	}

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizBar, Title: "Requêtes 311 selon la température", XField: "Température", YField: "Requêtes"},
		evidence: base,
		base:     base,
	}
	if bestIdx >= 0 {
		out.key = models.KeyMetric{Label: "Requêtes dans la tranche " + tempBuckets[bestIdx].label, Value: float64(best), Unit: "requêtes"}
	}
	return out
}

func (e *Executor) neighborhoods(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	coll := FilterCollisions(e.snap.Collisions, CollisionPredicate(req.Window, models.WeatherNone))
	reqs := FilterRequests(e.snap.Requests, RequestPredicate(req.Window))
	tr.Add("filtre des collisions", len(coll), filterExpression("collisions", req.Window, models.WeatherNone))
	tr.Add("filtre des requêtes 311", len(reqs), filterExpression("requetes_311", req.Window, models.WeatherNone))
	base := len(coll) + len(reqs)

	type comboStats struct {
		collisions int
		requests   int
	}
	byBorough := map[string]*comboStats{}
	bucket := func(name string) *comboStats {
		if name == "" {
			return nil
		}
		s, ok := byBorough[name]
		if !ok {
			s = &comboStats{}
			byBorough[name] = s
		}
		return s
	}
	for _, c := range coll {
		if s := bucket(c.Borough); s != nil {
			s.collisions++
		}
	}
	for _, r := range reqs {
		if s := bucket(r.Borough); s != nil {
			s.requests++
		}
	}

	type scored struct {
		name       string
		collisions int
		requests   int
		score      int
	}
	ranked := make([]scored, 0, len(byBorough))
	for name, s := range byBorough {
		ranked = append(ranked, scored{name, s.collisions, s.requests, s.collisions*2 + s.requests})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > e.cfg.TopNeighborhoods {
		ranked = ranked[:e.cfg.TopNeighborhoods]
	}
	tr.Add("score combiné par quartier", len(ranked),
		fmt.Sprintf("score = collisions * 2 + requetes_311; top %d", e.cfg.TopNeighborhoods))

	table := models.Table{Columns: []string{"Quartier", "Collisions", "Requêtes 311", "Score"}}
	for _, s := range ranked {
		table.Rows = append(table.Rows, []string{s.name, itoa(s.collisions), itoa(s.requests), itoa(s.score)})
	}

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizRankedList, Title: "Quartiers les plus sollicités", XField: "Quartier", YField: "Score"},
		evidence: base,
		base:     base,
	}
	if len(ranked) > 0 {
		out.key = models.KeyMetric{Label: "Score du quartier le plus touché", Value: float64(ranked[0].score), Unit: "points"}
	}
	return out
}

func (e *Executor) neighborhoodsWeather(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	rows := FilterCollisions(e.snap.Collisions, CollisionPredicate(req.Window, req.Weather))
	tr.Add("filtre des collisions", len(rows), filterExpression("collisions", req.Window, req.Weather))
	base := len(rows)

	groups := map[string]*zoneStats{}
	for _, c := range rows {
		if c.Borough == "" {
			continue
		}
		g, ok := groups[c.Borough]
		if !ok {
			g = &zoneStats{name: c.Borough}
			groups[c.Borough] = g
		}
		g.total++
		if c.Severity >= severeThreshold {
			g.severe++
		}
	}
	ranked := rankZones(groups, e.cfg.TopNeighborhoods)
	tr.Add("agrégation par quartier", len(groups),
		fmt.Sprintf("count, graves = count(severity >= %d) par quartier; top %d", severeThreshold, e.cfg.TopNeighborhoods))

	table := models.Table{Columns: []string{"Quartier", "Collisions", "Graves"}}
	for _, g := range ranked {
		table.Rows = append(table.Rows, []string{g.name, itoa(g.total), itoa(g.severe)})
	}

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizRankedList, Title: "Quartiers les plus touchés sous condition météo", XField: "Quartier", YField: "Collisions"},
		evidence: base,
		base:     base,
	}
	if len(ranked) > 0 {
		out.key = models.KeyMetric{Label: "Collisions dans le quartier le plus touché", Value: float64(ranked[0].total), Unit: "collisions"}
	}
	return out
}

func (e *Executor) transitProximity(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome {
	if len(e.snap.Stops) == 0 {
		tr.Add("arrêts de transport disponibles", 0, "source transit_stops indisponible")
		return outcome{
			caveats: []string{"La source des arrêts de transport est indisponible; l'analyse de proximité ne peut pas être calculée."},
		}
	}

	rows := FilterCollisions(e.snap.Collisions, CollisionPredicate(req.Window, req.Weather))
	tr.Add("filtre des collisions", len(rows), filterExpression("collisions", req.Window, req.Weather))
	base := len(rows)

	latStep, lonStep := e.cfg.Grid.LatStep, e.cfg.Grid.LonStep
	type cell struct{ lat, lon int }
	toCell := func(lat, lon float64) cell {
		return cell{int(math.Round(lat / latStep)), int(math.Round(lon / lonStep))}
	}

	type cellStats struct {
		collisions int
		severe     int
	}
	collCells := map[cell]*cellStats{}
	for _, c := range rows {
		if c.Latitude == 0 && c.Longitude == 0 {
			continue
		}
		key := toCell(c.Latitude, c.Longitude)
		s, ok := collCells[key]
		if !ok {
			s = &cellStats{}
			collCells[key] = s
		}
		s.collisions++
		if c.Severity >= severeThreshold {
			s.severe++
		}
	}

	type stopGroup struct {
		count int
		names []string
	}
	stopCells := map[cell]*stopGroup{}
	for _, s := range e.snap.Stops {
		key := toCell(s.Latitude, s.Longitude)
		g, ok := stopCells[key]
		if !ok {
			g = &stopGroup{}
			stopCells[key] = g
		}
		g.count++
		if len(g.names) < 2 && s.Name != "" {
			g.names = append(g.names, s.Name)
		}
	}

	type joined struct {
		key   cell
		coll  *cellStats
		stops *stopGroup
	}
	var cells []joined
	for key, cs := range collCells {
		if sg, ok := stopCells[key]; ok {
			cells = append(cells, joined{key, cs, sg})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].coll.collisions != cells[j].coll.collisions {
			return cells[i].coll.collisions > cells[j].coll.collisions
		}
		if cells[i].key.lat != cells[j].key.lat {
			return cells[i].key.lat < cells[j].key.lat
		}
		return cells[i].key.lon < cells[j].key.lon
	})
	if len(cells) > e.cfg.TopZones {
		cells = cells[:e.cfg.TopZones]
	}
	tr.Add("jonction grille collisions × arrêts", len(cells),
		fmt.Sprintf("cellule = (round(lat / %.3f), round(lon / %.3f)); jonction interne; top %d par collisions", latStep, lonStep, e.cfg.TopZones))

	table := models.Table{Columns: []string{"Zone", "Collisions", "Graves", "Arrêts", "Exemples d'arrêts"}}
	for _, c := range cells {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("(%.4f, %.4f)", float64(c.key.lat)*latStep, float64(c.key.lon)*lonStep),
			itoa(c.coll.collisions),
			itoa(c.coll.severe),
			itoa(c.stops.count),
			strings.Join(c.stops.names, ", "),
		})
	}

	out := outcome{
		table:    table,
		viz:      models.VizSpec{Kind: models.VizGridMap, Title: "Collisions autour des arrêts de transport", XField: "Zone", YField: "Collisions"},
		evidence: base,
		base:     base,
	}
	if len(cells) > 0 {
		out.key = models.KeyMetric{Label: "Collisions dans la zone la plus exposée", Value: float64(cells[0].coll.collisions), Unit: "collisions"}
	}
	return out
}

func rankZones(groups map[string]*zoneStats, limit int) []*zoneStats {
	ranked := make([]*zoneStats, 0, len(groups))
	for _, g := range groups {
		ranked = append(ranked, g)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		if ranked[i].severe != ranked[j].severe {
			return ranked[i].severe > ranked[j].severe
		}
		return ranked[i].name < ranked[j].name
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func condLabel(code dataset.ConditionCode) string {
	switch code {
	case dataset.CondClear:
		return "Temps clair"
	case dataset.CondRain:
		return "Pluie"
	case dataset.CondSnow:
		return "Neige"
	case dataset.CondIce:
		return "Verglas"
	default:
		return "Autre"
	}
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }
