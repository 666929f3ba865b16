package main

import (
	"github.com/valyala/fasturi"
	"gopkg.in/yaml.v3"
)

type uriReport struct {
	URI          string        `yaml:"uri"`
	Scheme       string        `yaml:"scheme"`
	Authority    string        `yaml:"authority"`
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Path         string        `yaml:"path"`
	QueryString  string        `yaml:"query_string"`
	PathAndQuery string        `yaml:"path_and_query"`
	Params       []paramReport `yaml:"params,omitempty"`
}

type paramReport struct {
	Key string `yaml:"key"`
	// Value is nil for params without '='.
	Value *string `yaml:"value,omitempty"`
}

func newURIReport(u *fasturi.URI, params []fasturi.QueryParam) uriReport {
	return uriReport{
		URI:          u.String(),
		Scheme:       string(u.Scheme()),
		Authority:    string(u.Authority()),
		Host:         string(u.Host()),
		Port:         u.Port(),
		Path:         string(u.Path()),
		QueryString:  string(u.QueryString()),
		PathAndQuery: string(u.PathAndQuery()),
		Params:       newParamReports(params),
	}
}

func newParamReports(params []fasturi.QueryParam) []paramReport {
	if len(params) == 0 {
		return nil
	}
	reports := make([]paramReport, 0, len(params))
	for _, p := range params {
		r := paramReport{Key: string(p.Key)}
		if p.Value != nil {
			v := string(p.Value)
			r.Value = &v
		}
		reports = append(reports, r)
	}
	return reports
}

// writeURIs writes parts of each URI (and params, if withParams is set).
func (c *cli) writeURIs(uris []*fasturi.URI, withParams bool) error {
	if c.output == outputYAML {
		reports := make([]uriReport, 0, len(uris))
		for _, u := range uris {
			var params []fasturi.QueryParam
			if withParams {
				params = u.QueryParams()
			}
			reports = append(reports, newURIReport(u, params))
		}
		return c.writeYAML(reports)
	}

	bb := fasturi.AcquireByteBuffer()
	defer fasturi.ReleaseByteBuffer(bb)
	for i, u := range uris {
		if i > 0 {
			bb.B = append(bb.B, '\n')
		}
		bb.B = u.AppendDump(bb.B)
		if withParams {
			u.VisitQueryParams(func(key, value []byte) {
				bb.B = append(bb.B, "param: "...)
				bb.B = appendParam(bb.B, key, value)
				bb.B = append(bb.B, '\n')
			})
		}
	}
	_, err := bb.WriteTo(c.stdout)
	return err
}

// writeParams writes query params, one per line.
func (c *cli) writeParams(params []fasturi.QueryParam) error {
	if c.output == outputYAML {
		reports := newParamReports(params)
		if reports == nil {
			reports = []paramReport{}
		}
		return c.writeYAML(reports)
	}

	bb := fasturi.AcquireByteBuffer()
	defer fasturi.ReleaseByteBuffer(bb)
	for _, p := range params {
		bb.B = appendParam(bb.B, p.Key, p.Value)
		bb.B = append(bb.B, '\n')
	}
	_, err := bb.WriteTo(c.stdout)
	return err
}

func (c *cli) writeYAML(v interface{}) error {
	enc := yaml.NewEncoder(c.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func appendParam(dst, key, value []byte) []byte {
	dst = append(dst, key...)
	if value != nil {
		dst = append(dst, '=')
		dst = append(dst, value...)
	}
	return dst
}
