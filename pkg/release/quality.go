package release

// QualityLabel composes the display quality for a release:
// "[UHD ]<Source>-<Resolution>". The label degrades gracefully when tokens
// are missing: resolution alone, source alone, or empty when neither was
// recognized. The UHD prefix appears only for 2160p releases that carried
// an explicit UHD marker. Codec never participates.
func (i *Info) QualityLabel() string {
	res := i.Resolution
	src := i.Source

	switch {
	case src != SourceUnknown && res != ResolutionUnknown:
		label := src.Label() + "-" + res.String()
		if i.IsUHD && res == Resolution2160p {
			label = "UHD " + label
		}
		return label
	case res != ResolutionUnknown:
		return res.String()
	case src != SourceUnknown:
		return src.Label()
	default:
		return ""
	}
}
