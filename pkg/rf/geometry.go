package rf

// TubeGeometry describes the printed mast sections the elements live inside.
// All dimensions in mm.
type TubeGeometry struct {
	TubeODMM          float64 `json:"tube_od_mm"`
	WallMM            float64 `json:"wall_mm"`
	SleeveChannelIDMM float64 `json:"sleeve_channel_id_mm"`
	JointLengthMM     float64 `json:"joint_length_mm"`
	JointClearanceMM  float64 `json:"joint_clearance_mm"`
	MaxPrintHeightMM  float64 `json:"max_print_height_mm"`
}

// TubeIDMM is the bore left inside the tube wall.
func (g TubeGeometry) TubeIDMM() float64 {
	return g.TubeODMM - 2*g.WallMM
}

// SectionBodyLengthMM is the usable length per printed section once the
// male/female joint overlap is subtracted.
func (g TubeGeometry) SectionBodyLengthMM() float64 {
	return g.MaxPrintHeightMM - g.JointLengthMM
}

// DefaultTubeGeometry matches the reference build: 32mm OD / 2.5mm wall tube,
// 18mm sleeve channel, 25mm joints, sized for a 240mm-tall print volume.
func DefaultTubeGeometry() TubeGeometry {
	return TubeGeometry{
		TubeODMM:          32.0,
		WallMM:            2.5,
		SleeveChannelIDMM: 18.0,
		JointLengthMM:     25.0,
		JointClearanceMM:  0.25,
		MaxPrintHeightMM:  240.0,
	}
}
