package catalog

import "spine-intake/internal/domain"

// backHotspots 背面视图热点（患者左侧位于图片左侧），脊柱按节段细分
var backHotspots = []domain.HotspotDefinition{
	{GroupID: 101, DisplayName: "Left Parietal Region", BoundingBox: domain.NormalizedRect{X: 0.4250, Y: 0.0050, Width: 0.0750, Height: 0.0400}},
	{GroupID: 101, DisplayName: "Right Parietal Region", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.0050, Width: 0.0750, Height: 0.0400}},
	{GroupID: 101, DisplayName: "Left Occipital Region", BoundingBox: domain.NormalizedRect{X: 0.4250, Y: 0.0450, Width: 0.0750, Height: 0.0400}},
	{GroupID: 101, DisplayName: "Right Occipital Region", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.0450, Width: 0.0750, Height: 0.0400}},
	{GroupID: 102, DisplayName: "C1 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.0850, Width: 0.0300, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Left Paraspinal C1", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.0850, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Right Paraspinal C1", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.0850, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "C2 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.0907, Width: 0.0300, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Left Paraspinal C2", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.0907, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Right Paraspinal C2", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.0907, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "C3 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.0964, Width: 0.0300, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Left Paraspinal C3", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.0964, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Right Paraspinal C3", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.0964, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "C4 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1021, Width: 0.0300, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Left Paraspinal C4", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1021, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Right Paraspinal C4", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1021, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "C5 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1079, Width: 0.0300, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Left Paraspinal C5", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1079, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Right Paraspinal C5", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1079, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "C6 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1136, Width: 0.0300, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Left Paraspinal C6", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1136, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Right Paraspinal C6", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1136, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "C7 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1193, Width: 0.0300, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Left Paraspinal C7", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1193, Width: 0.0350, Height: 0.0057}},
	{GroupID: 102, DisplayName: "Right Paraspinal C7", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1193, Width: 0.0350, Height: 0.0057}},
	{GroupID: 103, DisplayName: "T1 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1250, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T1", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1250, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T1", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1250, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T2 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1375, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T2", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1375, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T2", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1375, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T3 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1500, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T3", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1500, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T3", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1500, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T4 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1625, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T4", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1625, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T4", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1625, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T5 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1750, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T5", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1750, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T5", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1750, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T6 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1875, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T6", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.1875, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T6", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1875, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T7 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2000, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T7", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2000, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T7", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2000, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T8 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2125, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T8", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2125, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T8", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2125, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T9 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2250, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T9", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2250, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T9", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2250, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T10 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2375, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T10", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2375, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T10", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2375, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T11 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2500, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T11", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2500, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T11", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2500, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "T12 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2625, Width: 0.0300, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Left Paraspinal T12", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2625, Width: 0.0350, Height: 0.0125}},
	{GroupID: 103, DisplayName: "Right Paraspinal T12", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2625, Width: 0.0350, Height: 0.0125}},
	{GroupID: 104, DisplayName: "L1 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2750, Width: 0.0300, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Left Paraspinal L1", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2750, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Right Paraspinal L1", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2750, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "L2 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.2910, Width: 0.0300, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Left Paraspinal L2", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.2910, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Right Paraspinal L2", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2910, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "L3 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3070, Width: 0.0300, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Left Paraspinal L3", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3070, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Right Paraspinal L3", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3070, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "L4 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3230, Width: 0.0300, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Left Paraspinal L4", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3230, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Right Paraspinal L4", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3230, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "L5 Vertebra", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3390, Width: 0.0300, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Left Paraspinal L5", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3390, Width: 0.0350, Height: 0.0160}},
	{GroupID: 104, DisplayName: "Right Paraspinal L5", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3390, Width: 0.0350, Height: 0.0160}},
	{GroupID: 105, DisplayName: "Sacrum S1", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3550, Width: 0.0300, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Left Paraspinal S1", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3550, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Right Paraspinal S1", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3550, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Sacrum S2", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3630, Width: 0.0300, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Left Paraspinal S2", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3630, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Right Paraspinal S2", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3630, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Sacrum S3", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3710, Width: 0.0300, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Left Paraspinal S3", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3710, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Right Paraspinal S3", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3710, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Sacrum S4", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3790, Width: 0.0300, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Left Paraspinal S4", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3790, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Right Paraspinal S4", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3790, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Sacrum S5", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3870, Width: 0.0300, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Left Paraspinal S5", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3870, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Right Paraspinal S5", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3870, Width: 0.0350, Height: 0.0080}},
	{GroupID: 105, DisplayName: "Coccyx", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.3950, Width: 0.0300, Height: 0.0100}},
	{GroupID: 106, DisplayName: "Left Posterior Shoulder (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.3300, Y: 0.1200, Width: 0.0450, Height: 0.0250}},
	{GroupID: 106, DisplayName: "Left Posterior Shoulder (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.3750, Y: 0.1200, Width: 0.0450, Height: 0.0250}},
	{GroupID: 106, DisplayName: "Left Posterior Shoulder (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.3300, Y: 0.1450, Width: 0.0450, Height: 0.0250}},
	{GroupID: 106, DisplayName: "Left Posterior Shoulder (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.3750, Y: 0.1450, Width: 0.0450, Height: 0.0250}},
	{GroupID: 107, DisplayName: "Right Posterior Shoulder (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5800, Y: 0.1200, Width: 0.0450, Height: 0.0250}},
	{GroupID: 107, DisplayName: "Right Posterior Shoulder (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.6250, Y: 0.1200, Width: 0.0450, Height: 0.0250}},
	{GroupID: 107, DisplayName: "Right Posterior Shoulder (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5800, Y: 0.1450, Width: 0.0450, Height: 0.0250}},
	{GroupID: 107, DisplayName: "Right Posterior Shoulder (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.6250, Y: 0.1450, Width: 0.0450, Height: 0.0250}},
	{GroupID: 108, DisplayName: "Left Scapula (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.3800, Y: 0.1400, Width: 0.0350, Height: 0.0300}},
	{GroupID: 108, DisplayName: "Left Scapula (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4150, Y: 0.1400, Width: 0.0350, Height: 0.0300}},
	{GroupID: 108, DisplayName: "Left Scapula (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.3800, Y: 0.1700, Width: 0.0350, Height: 0.0300}},
	{GroupID: 108, DisplayName: "Left Scapula (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4150, Y: 0.1700, Width: 0.0350, Height: 0.0300}},
	{GroupID: 108, DisplayName: "Left Scapula (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.3800, Y: 0.2000, Width: 0.0350, Height: 0.0300}},
	{GroupID: 108, DisplayName: "Left Scapula (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4150, Y: 0.2000, Width: 0.0350, Height: 0.0300}},
	{GroupID: 109, DisplayName: "Right Scapula (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.1400, Width: 0.0350, Height: 0.0300}},
	{GroupID: 109, DisplayName: "Right Scapula (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5850, Y: 0.1400, Width: 0.0350, Height: 0.0300}},
	{GroupID: 109, DisplayName: "Right Scapula (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.1700, Width: 0.0350, Height: 0.0300}},
	{GroupID: 109, DisplayName: "Right Scapula (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5850, Y: 0.1700, Width: 0.0350, Height: 0.0300}},
	{GroupID: 109, DisplayName: "Right Scapula (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.2000, Width: 0.0350, Height: 0.0300}},
	{GroupID: 109, DisplayName: "Right Scapula (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5850, Y: 0.2000, Width: 0.0350, Height: 0.0300}},
	{GroupID: 110, DisplayName: "Left Mid Back (Upper Lateral)", BoundingBox: domain.NormalizedRect{X: 0.3900, Y: 0.2300, Width: 0.0600, Height: 0.0250}},
	{GroupID: 110, DisplayName: "Left Mid Back (Lower Lateral)", BoundingBox: domain.NormalizedRect{X: 0.3900, Y: 0.2550, Width: 0.0600, Height: 0.0250}},
	{GroupID: 111, DisplayName: "Right Mid Back (Upper Lateral)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.2300, Width: 0.0600, Height: 0.0250}},
	{GroupID: 111, DisplayName: "Right Mid Back (Lower Lateral)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.2550, Width: 0.0600, Height: 0.0250}},
	{GroupID: 112, DisplayName: "Left Lower Back (Upper Lateral)", BoundingBox: domain.NormalizedRect{X: 0.3900, Y: 0.2800, Width: 0.0600, Height: 0.0400}},
	{GroupID: 112, DisplayName: "Left Lower Back (Lower Lateral)", BoundingBox: domain.NormalizedRect{X: 0.3900, Y: 0.3200, Width: 0.0600, Height: 0.0400}},
	{GroupID: 113, DisplayName: "Right Lower Back (Upper Lateral)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.2800, Width: 0.0600, Height: 0.0400}},
	{GroupID: 113, DisplayName: "Right Lower Back (Lower Lateral)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.3200, Width: 0.0600, Height: 0.0400}},
	{GroupID: 114, DisplayName: "Left Sacroiliac Joint", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.3550, Width: 0.0350, Height: 0.0300}},
	{GroupID: 114, DisplayName: "Left Buttock (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.3950, Y: 0.3850, Width: 0.0450, Height: 0.0400}},
	{GroupID: 114, DisplayName: "Left Buttock (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.3850, Width: 0.0450, Height: 0.0400}},
	{GroupID: 114, DisplayName: "Left Buttock (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.3950, Y: 0.4250, Width: 0.0450, Height: 0.0400}},
	{GroupID: 114, DisplayName: "Left Buttock (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.4250, Width: 0.0450, Height: 0.0400}},
	{GroupID: 115, DisplayName: "Right Sacroiliac Joint", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3550, Width: 0.0350, Height: 0.0300}},
	{GroupID: 115, DisplayName: "Right Buttock (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.3850, Width: 0.0450, Height: 0.0400}},
	{GroupID: 115, DisplayName: "Right Buttock (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.3850, Width: 0.0450, Height: 0.0400}},
	{GroupID: 115, DisplayName: "Right Buttock (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.4250, Width: 0.0450, Height: 0.0400}},
	{GroupID: 115, DisplayName: "Right Buttock (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.4250, Width: 0.0450, Height: 0.0400}},
	{GroupID: 116, DisplayName: "Left Posterior Upper Arm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.2900, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 116, DisplayName: "Left Posterior Upper Arm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.3250, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 116, DisplayName: "Left Posterior Upper Arm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.2900, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 116, DisplayName: "Left Posterior Upper Arm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.3250, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 116, DisplayName: "Left Posterior Upper Arm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.2900, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 116, DisplayName: "Left Posterior Upper Arm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.3250, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 117, DisplayName: "Right Posterior Upper Arm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.6400, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 117, DisplayName: "Right Posterior Upper Arm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.6750, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 117, DisplayName: "Right Posterior Upper Arm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.6400, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 117, DisplayName: "Right Posterior Upper Arm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.6750, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 117, DisplayName: "Right Posterior Upper Arm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.6400, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 117, DisplayName: "Right Posterior Upper Arm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.6750, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 118, DisplayName: "Left Elbow (Olecranon) (Outer)", BoundingBox: domain.NormalizedRect{X: 0.2700, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 118, DisplayName: "Left Elbow (Olecranon) (Inner)", BoundingBox: domain.NormalizedRect{X: 0.3050, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 119, DisplayName: "Right Elbow (Olecranon) (Inner)", BoundingBox: domain.NormalizedRect{X: 0.6600, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 119, DisplayName: "Right Elbow (Olecranon) (Outer)", BoundingBox: domain.NormalizedRect{X: 0.6950, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 120, DisplayName: "Left Posterior Forearm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.2400, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 120, DisplayName: "Left Posterior Forearm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.2750, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 120, DisplayName: "Left Posterior Forearm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.2400, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 120, DisplayName: "Left Posterior Forearm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.2750, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 120, DisplayName: "Left Posterior Forearm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.2400, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 120, DisplayName: "Left Posterior Forearm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.2750, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 121, DisplayName: "Right Posterior Forearm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.6900, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 121, DisplayName: "Right Posterior Forearm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.7250, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 121, DisplayName: "Right Posterior Forearm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.6900, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 121, DisplayName: "Right Posterior Forearm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.7250, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 121, DisplayName: "Right Posterior Forearm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.6900, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 121, DisplayName: "Right Posterior Forearm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.7250, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 122, DisplayName: "Left Back of Wrist (Outer)", BoundingBox: domain.NormalizedRect{X: 0.2200, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 122, DisplayName: "Left Back of Wrist (Inner)", BoundingBox: domain.NormalizedRect{X: 0.2500, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 123, DisplayName: "Right Back of Wrist (Inner)", BoundingBox: domain.NormalizedRect{X: 0.7200, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 123, DisplayName: "Right Back of Wrist (Outer)", BoundingBox: domain.NormalizedRect{X: 0.7500, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 124, DisplayName: "Left Back of Hand (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.1900, Y: 0.5300, Width: 0.0400, Height: 0.0300}},
	{GroupID: 124, DisplayName: "Left Back of Hand (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.2300, Y: 0.5300, Width: 0.0400, Height: 0.0300}},
	{GroupID: 124, DisplayName: "Left Back of Hand (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.1900, Y: 0.5600, Width: 0.0400, Height: 0.0300}},
	{GroupID: 124, DisplayName: "Left Back of Hand (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.2300, Y: 0.5600, Width: 0.0400, Height: 0.0300}},
	{GroupID: 125, DisplayName: "Right Back of Hand (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.7300, Y: 0.5300, Width: 0.0400, Height: 0.0300}},
	{GroupID: 125, DisplayName: "Right Back of Hand (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.7700, Y: 0.5300, Width: 0.0400, Height: 0.0300}},
	{GroupID: 125, DisplayName: "Right Back of Hand (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.7300, Y: 0.5600, Width: 0.0400, Height: 0.0300}},
	{GroupID: 125, DisplayName: "Right Back of Hand (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.7700, Y: 0.5600, Width: 0.0400, Height: 0.0300}},
	{GroupID: 126, DisplayName: "Left Hamstring (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.4650, Width: 0.0500, Height: 0.0462}},
	{GroupID: 126, DisplayName: "Left Hamstring (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.4650, Width: 0.0500, Height: 0.0462}},
	{GroupID: 126, DisplayName: "Left Hamstring (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.5112, Width: 0.0500, Height: 0.0462}},
	{GroupID: 126, DisplayName: "Left Hamstring (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.5112, Width: 0.0500, Height: 0.0462}},
	{GroupID: 126, DisplayName: "Left Hamstring (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.5575, Width: 0.0500, Height: 0.0462}},
	{GroupID: 126, DisplayName: "Left Hamstring (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.5575, Width: 0.0500, Height: 0.0462}},
	{GroupID: 126, DisplayName: "Left Hamstring (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.6038, Width: 0.0500, Height: 0.0462}},
	{GroupID: 126, DisplayName: "Left Hamstring (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.6038, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.4650, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.4650, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.5112, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.5112, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.5575, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.5575, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.6038, Width: 0.0500, Height: 0.0462}},
	{GroupID: 127, DisplayName: "Right Hamstring (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.6038, Width: 0.0500, Height: 0.0462}},
	{GroupID: 128, DisplayName: "Left Back of Knee (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4050, Y: 0.6500, Width: 0.0425, Height: 0.0500}},
	{GroupID: 128, DisplayName: "Left Back of Knee (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.6500, Width: 0.0425, Height: 0.0500}},
	{GroupID: 129, DisplayName: "Right Back of Knee (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5100, Y: 0.6500, Width: 0.0425, Height: 0.0500}},
	{GroupID: 129, DisplayName: "Right Back of Knee (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.6500, Width: 0.0425, Height: 0.0500}},
	{GroupID: 130, DisplayName: "Left Calf (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.7000, Width: 0.0375, Height: 0.0400}},
	{GroupID: 130, DisplayName: "Left Calf (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.7000, Width: 0.0375, Height: 0.0400}},
	{GroupID: 130, DisplayName: "Left Calf (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.7400, Width: 0.0375, Height: 0.0400}},
	{GroupID: 130, DisplayName: "Left Calf (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.7400, Width: 0.0375, Height: 0.0400}},
	{GroupID: 130, DisplayName: "Left Calf (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.7800, Width: 0.0375, Height: 0.0400}},
	{GroupID: 130, DisplayName: "Left Calf (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.7800, Width: 0.0375, Height: 0.0400}},
	{GroupID: 130, DisplayName: "Left Calf (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.8200, Width: 0.0375, Height: 0.0400}},
	{GroupID: 130, DisplayName: "Left Calf (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.8200, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.7000, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.7000, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.7400, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.7400, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.7800, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.7800, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.8200, Width: 0.0375, Height: 0.0400}},
	{GroupID: 131, DisplayName: "Right Calf (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.8200, Width: 0.0375, Height: 0.0400}},
	{GroupID: 132, DisplayName: "Left Achilles (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4200, Y: 0.8600, Width: 0.0250, Height: 0.0350}},
	{GroupID: 132, DisplayName: "Left Achilles (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4450, Y: 0.8600, Width: 0.0250, Height: 0.0350}},
	{GroupID: 133, DisplayName: "Right Achilles (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5300, Y: 0.8600, Width: 0.0250, Height: 0.0350}},
	{GroupID: 133, DisplayName: "Right Achilles (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5550, Y: 0.8600, Width: 0.0250, Height: 0.0350}},
	{GroupID: 134, DisplayName: "Left Heel (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4150, Y: 0.8950, Width: 0.0300, Height: 0.0300}},
	{GroupID: 134, DisplayName: "Left Heel (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4450, Y: 0.8950, Width: 0.0300, Height: 0.0300}},
	{GroupID: 135, DisplayName: "Right Heel (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5250, Y: 0.8950, Width: 0.0300, Height: 0.0300}},
	{GroupID: 135, DisplayName: "Right Heel (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5550, Y: 0.8950, Width: 0.0300, Height: 0.0300}},
	{GroupID: 136, DisplayName: "Left Sole - Heel Pad (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.9250, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 136, DisplayName: "Left Sole - Heel Pad (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.9250, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 136, DisplayName: "Left Sole - Arch (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.9425, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 136, DisplayName: "Left Sole - Arch (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.9425, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 136, DisplayName: "Left Sole - Ball of Foot (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.9600, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 136, DisplayName: "Left Sole - Ball of Foot (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.9600, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 136, DisplayName: "Left Sole - Toe Pads (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.9775, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 136, DisplayName: "Left Sole - Toe Pads (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.9775, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Heel Pad (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5200, Y: 0.9250, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Heel Pad (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.9250, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Arch (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5200, Y: 0.9425, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Arch (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.9425, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Ball of Foot (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5200, Y: 0.9600, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Ball of Foot (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.9600, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Toe Pads (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5200, Y: 0.9775, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
	{GroupID: 137, DisplayName: "Right Sole - Toe Pads (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.9775, Width: 0.0400, Height: 0.0175}, IsDetailVariant: true},
}
