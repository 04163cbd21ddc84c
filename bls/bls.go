// Package bls fetches occupation wage statistics from the U.S. Bureau of
// Labor Statistics public API, to prefill a realistic salary for a given
// occupation. Responses are cached on disk with a daily expiry.
package bls

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const endpoint = "https://api.bls.gov/publicAPI/v2/timeseries/data/"

// NationalArea is the area code of the national OEWS statistics.
const NationalArea = "0000000"

// Occupation is an entry of the occupation catalog, identified by its SOC
// code (e.g. "15-1252" for software developers).
type Occupation struct {
	Code  string
	Title string
}

// occupations is a catalog of common SOC occupations for offline search.
// The full catalog lives at bls.gov; only the frequent ones are needed to
// bootstrap a profile.
var occupations = []Occupation{
	{Code: "11-1021", Title: "General and Operations Managers"},
	{Code: "13-2011", Title: "Accountants and Auditors"},
	{Code: "15-1252", Title: "Software Developers"},
	{Code: "15-2051", Title: "Data Scientists"},
	{Code: "17-2051", Title: "Civil Engineers"},
	{Code: "23-1011", Title: "Lawyers"},
	{Code: "25-2021", Title: "Elementary School Teachers"},
	{Code: "29-1141", Title: "Registered Nurses"},
	{Code: "29-1215", Title: "Family Medicine Physicians"},
	{Code: "41-2031", Title: "Retail Salespersons"},
}

// SearchOccupations returns the catalog occupations whose title contains the
// query, case-insensitively.
func SearchOccupations(query string) []Occupation {
	query = strings.ToLower(query)
	var results []Occupation
	for _, o := range occupations {
		if strings.Contains(strings.ToLower(o.Title), query) {
			results = append(results, o)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results
}

// Client queries the BLS timeseries API. The zero value works without an API
// key within the public rate limits; a registration key raises them.
type Client struct {
	Key    string
	client *http.Client
}

// NewClient returns a client backed by the daily disk cache.
func NewClient(key string) *Client {
	return &Client{Key: key, client: daily()}
}

// seriesID builds an OEWS timeseries identifier for an annual mean wage:
// the occupation code without its dash, scoped to an area.
func seriesID(occupationCode, areaCode string) string {
	code := strings.ReplaceAll(occupationCode, "-", "")
	if areaCode == NationalArea {
		return "OEUN" + NationalArea + "000000" + code + "01"
	}
	return "OEUM" + areaCode + "000000" + code + "01"
}

// AnnualMeanWage returns the latest national annual mean wage for an
// occupation, in dollars.
func (c *Client) AnnualMeanWage(occupationCode string) (float64, error) {
	return c.WageByArea(occupationCode, NationalArea)
}

// WageByArea returns the latest annual mean wage for an occupation in a BLS
// area, in dollars.
func (c *Client) WageByArea(occupationCode, areaCode string) (float64, error) {
	year := time.Now().Year()
	body := map[string]any{
		"seriesid":  []string{seriesID(occupationCode, areaCode)},
		"startyear": strconv.Itoa(year - 2),
		"endyear":   strconv.Itoa(year),
	}
	if c.Key != "" {
		body["registrationkey"] = c.Key
	}

	client := c.client
	if client == nil {
		client = daily()
	}
	var jobj any
	if err := jpost(client, endpoint, body, &jobj); err != nil {
		return 0, fmt.Errorf("error querying wage for %q: %w", occupationCode, err)
	}
	return latestValue(jobj, occupationCode)
}

// latestValue extracts the most recent observation from a timeseries
// response payload.
func latestValue(jobj any, name string) (float64, error) {
	if status, err := jsonpath.Get("$.status", jobj); err == nil {
		if s, ok := status.(string); ok && s != "REQUEST_SUCCEEDED" {
			return 0, fmt.Errorf("wage query for %q failed: %s", name, s)
		}
	}

	path := "$.Results.series[0].data[0].value"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing wage for %q: %q %w", name, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		// the API returns observation values as strings
		val, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read wage for %q: invalid value %q: %w", name, v, err)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("cannot read wage for %q: %q is neither a float nor a string: %v", name, path, jval)
	}
}
