package catalog

import "spine-intake/internal/domain"

// frontHotspots 正面视图热点（患者右侧位于图片左侧）
var frontHotspots = []domain.HotspotDefinition{
	{GroupID: 1, DisplayName: "Right Forehead", BoundingBox: domain.NormalizedRect{X: 0.4250, Y: 0.0050, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Forehead", BoundingBox: domain.NormalizedRect{X: 0.4750, Y: 0.0050, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Left Forehead", BoundingBox: domain.NormalizedRect{X: 0.5250, Y: 0.0050, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Right Eye Region", BoundingBox: domain.NormalizedRect{X: 0.4250, Y: 0.0250, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Nose", BoundingBox: domain.NormalizedRect{X: 0.4750, Y: 0.0250, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Left Eye Region", BoundingBox: domain.NormalizedRect{X: 0.5250, Y: 0.0250, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Right Cheek", BoundingBox: domain.NormalizedRect{X: 0.4250, Y: 0.0450, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Mouth", BoundingBox: domain.NormalizedRect{X: 0.4750, Y: 0.0450, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Left Cheek", BoundingBox: domain.NormalizedRect{X: 0.5250, Y: 0.0450, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Right Jaw", BoundingBox: domain.NormalizedRect{X: 0.4250, Y: 0.0650, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Chin", BoundingBox: domain.NormalizedRect{X: 0.4750, Y: 0.0650, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Left Jaw", BoundingBox: domain.NormalizedRect{X: 0.5250, Y: 0.0650, Width: 0.0500, Height: 0.0200}},
	{GroupID: 1, DisplayName: "Right Temple", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.0200, Width: 0.0150, Height: 0.0300}},
	{GroupID: 1, DisplayName: "Left Temple", BoundingBox: domain.NormalizedRect{X: 0.5750, Y: 0.0200, Width: 0.0150, Height: 0.0300}},
	{GroupID: 2, DisplayName: "Right Anterior Neck", BoundingBox: domain.NormalizedRect{X: 0.4550, Y: 0.0850, Width: 0.0300, Height: 0.0350}},
	{GroupID: 2, DisplayName: "Throat", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.0850, Width: 0.0300, Height: 0.0350}},
	{GroupID: 2, DisplayName: "Left Anterior Neck", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.0850, Width: 0.0300, Height: 0.0350}},
	{GroupID: 3, DisplayName: "Right Shoulder (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.3300, Y: 0.1200, Width: 0.0450, Height: 0.0300}},
	{GroupID: 3, DisplayName: "Right Shoulder (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.3750, Y: 0.1200, Width: 0.0450, Height: 0.0300}},
	{GroupID: 3, DisplayName: "Right Shoulder (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.3300, Y: 0.1500, Width: 0.0450, Height: 0.0300}},
	{GroupID: 3, DisplayName: "Right Shoulder (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.3750, Y: 0.1500, Width: 0.0450, Height: 0.0300}},
	{GroupID: 4, DisplayName: "Left Shoulder (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5800, Y: 0.1200, Width: 0.0450, Height: 0.0300}},
	{GroupID: 4, DisplayName: "Left Shoulder (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.6250, Y: 0.1200, Width: 0.0450, Height: 0.0300}},
	{GroupID: 4, DisplayName: "Left Shoulder (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5800, Y: 0.1500, Width: 0.0450, Height: 0.0300}},
	{GroupID: 4, DisplayName: "Left Shoulder (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.6250, Y: 0.1500, Width: 0.0450, Height: 0.0300}},
	{GroupID: 5, DisplayName: "Sternum (Upper)", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1300, Width: 0.0300, Height: 0.0450}},
	{GroupID: 5, DisplayName: "Sternum (Lower)", BoundingBox: domain.NormalizedRect{X: 0.4850, Y: 0.1750, Width: 0.0300, Height: 0.0450}},
	{GroupID: 5, DisplayName: "Right Chest (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.3900, Y: 0.1300, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Right Chest (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4375, Y: 0.1300, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Right Chest (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.3900, Y: 0.1733, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Right Chest (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4375, Y: 0.1733, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Right Chest (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.3900, Y: 0.2167, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Right Chest (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4375, Y: 0.2167, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Left Chest (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1300, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Left Chest (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5625, Y: 0.1300, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Left Chest (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.1733, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Left Chest (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5625, Y: 0.1733, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Left Chest (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.2167, Width: 0.0475, Height: 0.0433}},
	{GroupID: 5, DisplayName: "Left Chest (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5625, Y: 0.2167, Width: 0.0475, Height: 0.0433}},
	{GroupID: 6, DisplayName: "Right Upper Abdomen", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.2600, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Epigastric Region", BoundingBox: domain.NormalizedRect{X: 0.4667, Y: 0.2600, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Left Upper Abdomen", BoundingBox: domain.NormalizedRect{X: 0.5333, Y: 0.2600, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Right Flank", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.3067, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Umbilical Region", BoundingBox: domain.NormalizedRect{X: 0.4667, Y: 0.3067, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Left Flank", BoundingBox: domain.NormalizedRect{X: 0.5333, Y: 0.3067, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Right Lower Abdomen", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.3533, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Hypogastric Region", BoundingBox: domain.NormalizedRect{X: 0.4667, Y: 0.3533, Width: 0.0667, Height: 0.0467}},
	{GroupID: 6, DisplayName: "Left Lower Abdomen", BoundingBox: domain.NormalizedRect{X: 0.5333, Y: 0.3533, Width: 0.0667, Height: 0.0467}},
	{GroupID: 7, DisplayName: "Right Hip (Front)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.4000, Width: 0.0667, Height: 0.0350}},
	{GroupID: 7, DisplayName: "Lower Pelvis", BoundingBox: domain.NormalizedRect{X: 0.4667, Y: 0.4000, Width: 0.0667, Height: 0.0350}},
	{GroupID: 7, DisplayName: "Left Hip (Front)", BoundingBox: domain.NormalizedRect{X: 0.5333, Y: 0.4000, Width: 0.0667, Height: 0.0350}},
	{GroupID: 7, DisplayName: "Right Groin", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.4350, Width: 0.0667, Height: 0.0350}},
	{GroupID: 7, DisplayName: "Pubic Region", BoundingBox: domain.NormalizedRect{X: 0.4667, Y: 0.4350, Width: 0.0667, Height: 0.0350}},
	{GroupID: 7, DisplayName: "Left Groin", BoundingBox: domain.NormalizedRect{X: 0.5333, Y: 0.4350, Width: 0.0667, Height: 0.0350}},
	{GroupID: 8, DisplayName: "Right Upper Arm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.2900, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 8, DisplayName: "Right Upper Arm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.3250, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 8, DisplayName: "Right Upper Arm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.2900, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 8, DisplayName: "Right Upper Arm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.3250, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 8, DisplayName: "Right Upper Arm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.2900, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 8, DisplayName: "Right Upper Arm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.3250, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 9, DisplayName: "Left Upper Arm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.6400, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 9, DisplayName: "Left Upper Arm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.6750, Y: 0.1800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 9, DisplayName: "Left Upper Arm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.6400, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 9, DisplayName: "Left Upper Arm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.6750, Y: 0.2300, Width: 0.0350, Height: 0.0500}},
	{GroupID: 9, DisplayName: "Left Upper Arm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.6400, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 9, DisplayName: "Left Upper Arm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.6750, Y: 0.2800, Width: 0.0350, Height: 0.0500}},
	{GroupID: 10, DisplayName: "Right Elbow (Outer)", BoundingBox: domain.NormalizedRect{X: 0.2700, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 10, DisplayName: "Right Elbow (Inner)", BoundingBox: domain.NormalizedRect{X: 0.3050, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 11, DisplayName: "Left Elbow (Inner)", BoundingBox: domain.NormalizedRect{X: 0.6600, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 11, DisplayName: "Left Elbow (Outer)", BoundingBox: domain.NormalizedRect{X: 0.6950, Y: 0.3300, Width: 0.0350, Height: 0.0400}},
	{GroupID: 12, DisplayName: "Right Forearm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.2400, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 12, DisplayName: "Right Forearm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.2750, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 12, DisplayName: "Right Forearm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.2400, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 12, DisplayName: "Right Forearm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.2750, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 12, DisplayName: "Right Forearm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.2400, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 12, DisplayName: "Right Forearm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.2750, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 13, DisplayName: "Left Forearm (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.6900, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 13, DisplayName: "Left Forearm (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.7250, Y: 0.3700, Width: 0.0350, Height: 0.0433}},
	{GroupID: 13, DisplayName: "Left Forearm (Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.6900, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 13, DisplayName: "Left Forearm (Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.7250, Y: 0.4133, Width: 0.0350, Height: 0.0433}},
	{GroupID: 13, DisplayName: "Left Forearm (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.6900, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 13, DisplayName: "Left Forearm (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.7250, Y: 0.4567, Width: 0.0350, Height: 0.0433}},
	{GroupID: 14, DisplayName: "Right Wrist (Outer)", BoundingBox: domain.NormalizedRect{X: 0.2200, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 14, DisplayName: "Right Wrist (Inner)", BoundingBox: domain.NormalizedRect{X: 0.2500, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 15, DisplayName: "Left Wrist (Inner)", BoundingBox: domain.NormalizedRect{X: 0.7200, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 15, DisplayName: "Left Wrist (Outer)", BoundingBox: domain.NormalizedRect{X: 0.7500, Y: 0.5000, Width: 0.0300, Height: 0.0300}},
	{GroupID: 16, DisplayName: "Right Palm (Hypothenar)", BoundingBox: domain.NormalizedRect{X: 0.1900, Y: 0.5300, Width: 0.0400, Height: 0.0500}},
	{GroupID: 16, DisplayName: "Right Palm (Thenar)", BoundingBox: domain.NormalizedRect{X: 0.2300, Y: 0.5300, Width: 0.0400, Height: 0.0500}},
	{GroupID: 16, DisplayName: "Right Little Finger", BoundingBox: domain.NormalizedRect{X: 0.1900, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 16, DisplayName: "Right Ring Finger", BoundingBox: domain.NormalizedRect{X: 0.2060, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 16, DisplayName: "Right Middle Finger", BoundingBox: domain.NormalizedRect{X: 0.2220, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 16, DisplayName: "Right Index Finger", BoundingBox: domain.NormalizedRect{X: 0.2380, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 16, DisplayName: "Right Thumb", BoundingBox: domain.NormalizedRect{X: 0.2540, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 17, DisplayName: "Left Palm (Thenar)", BoundingBox: domain.NormalizedRect{X: 0.7300, Y: 0.5300, Width: 0.0400, Height: 0.0500}},
	{GroupID: 17, DisplayName: "Left Palm (Hypothenar)", BoundingBox: domain.NormalizedRect{X: 0.7700, Y: 0.5300, Width: 0.0400, Height: 0.0500}},
	{GroupID: 17, DisplayName: "Left Thumb", BoundingBox: domain.NormalizedRect{X: 0.7300, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 17, DisplayName: "Left Index Finger", BoundingBox: domain.NormalizedRect{X: 0.7460, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 17, DisplayName: "Left Middle Finger", BoundingBox: domain.NormalizedRect{X: 0.7620, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 17, DisplayName: "Left Ring Finger", BoundingBox: domain.NormalizedRect{X: 0.7780, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 17, DisplayName: "Left Little Finger", BoundingBox: domain.NormalizedRect{X: 0.7940, Y: 0.5800, Width: 0.0160, Height: 0.0300}, IsDetailVariant: true},
	{GroupID: 18, DisplayName: "Right Thigh (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.4700, Width: 0.0500, Height: 0.0450}},
	{GroupID: 18, DisplayName: "Right Thigh (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.4700, Width: 0.0500, Height: 0.0450}},
	{GroupID: 18, DisplayName: "Right Thigh (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.5150, Width: 0.0500, Height: 0.0450}},
	{GroupID: 18, DisplayName: "Right Thigh (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.5150, Width: 0.0500, Height: 0.0450}},
	{GroupID: 18, DisplayName: "Right Thigh (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.5600, Width: 0.0500, Height: 0.0450}},
	{GroupID: 18, DisplayName: "Right Thigh (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.5600, Width: 0.0500, Height: 0.0450}},
	{GroupID: 18, DisplayName: "Right Thigh (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.6050, Width: 0.0500, Height: 0.0450}},
	{GroupID: 18, DisplayName: "Right Thigh (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4500, Y: 0.6050, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.4700, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.4700, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.5150, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.5150, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.5600, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.5600, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5000, Y: 0.6050, Width: 0.0500, Height: 0.0450}},
	{GroupID: 19, DisplayName: "Left Thigh (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5500, Y: 0.6050, Width: 0.0500, Height: 0.0450}},
	{GroupID: 20, DisplayName: "Right Knee (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.4050, Y: 0.6500, Width: 0.0425, Height: 0.0250}},
	{GroupID: 20, DisplayName: "Right Knee (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.6500, Width: 0.0425, Height: 0.0250}},
	{GroupID: 20, DisplayName: "Right Knee (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.4050, Y: 0.6750, Width: 0.0425, Height: 0.0250}},
	{GroupID: 20, DisplayName: "Right Knee (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.6750, Width: 0.0425, Height: 0.0250}},
	{GroupID: 21, DisplayName: "Left Knee (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5100, Y: 0.6500, Width: 0.0425, Height: 0.0250}},
	{GroupID: 21, DisplayName: "Left Knee (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.6500, Width: 0.0425, Height: 0.0250}},
	{GroupID: 21, DisplayName: "Left Knee (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5100, Y: 0.6750, Width: 0.0425, Height: 0.0250}},
	{GroupID: 21, DisplayName: "Left Knee (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.6750, Width: 0.0425, Height: 0.0250}},
	{GroupID: 22, DisplayName: "Right Shin (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.7000, Width: 0.0375, Height: 0.0425}},
	{GroupID: 22, DisplayName: "Right Shin (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.7000, Width: 0.0375, Height: 0.0425}},
	{GroupID: 22, DisplayName: "Right Shin (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.7425, Width: 0.0375, Height: 0.0425}},
	{GroupID: 22, DisplayName: "Right Shin (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.7425, Width: 0.0375, Height: 0.0425}},
	{GroupID: 22, DisplayName: "Right Shin (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.7850, Width: 0.0375, Height: 0.0425}},
	{GroupID: 22, DisplayName: "Right Shin (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.7850, Width: 0.0375, Height: 0.0425}},
	{GroupID: 22, DisplayName: "Right Shin (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.4100, Y: 0.8275, Width: 0.0375, Height: 0.0425}},
	{GroupID: 22, DisplayName: "Right Shin (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.4475, Y: 0.8275, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Upper Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.7000, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Upper Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.7000, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Upper-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.7425, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Upper-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.7425, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Lower-Middle Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.7850, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Lower-Middle Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.7850, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Lower Inner)", BoundingBox: domain.NormalizedRect{X: 0.5150, Y: 0.8275, Width: 0.0375, Height: 0.0425}},
	{GroupID: 23, DisplayName: "Left Shin (Lower Outer)", BoundingBox: domain.NormalizedRect{X: 0.5525, Y: 0.8275, Width: 0.0375, Height: 0.0425}},
	{GroupID: 24, DisplayName: "Right Ankle (Outer)", BoundingBox: domain.NormalizedRect{X: 0.4150, Y: 0.8700, Width: 0.0300, Height: 0.0300}},
	{GroupID: 24, DisplayName: "Right Ankle (Inner)", BoundingBox: domain.NormalizedRect{X: 0.4450, Y: 0.8700, Width: 0.0300, Height: 0.0300}},
	{GroupID: 25, DisplayName: "Left Ankle (Inner)", BoundingBox: domain.NormalizedRect{X: 0.5250, Y: 0.8700, Width: 0.0300, Height: 0.0300}},
	{GroupID: 25, DisplayName: "Left Ankle (Outer)", BoundingBox: domain.NormalizedRect{X: 0.5550, Y: 0.8700, Width: 0.0300, Height: 0.0300}},
	{GroupID: 26, DisplayName: "Right Foot (Upper Dorsum Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.9000, Width: 0.0400, Height: 0.0250}},
	{GroupID: 26, DisplayName: "Right Foot (Upper Dorsum Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.9000, Width: 0.0400, Height: 0.0250}},
	{GroupID: 26, DisplayName: "Right Foot (Lower Dorsum Outer)", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.9250, Width: 0.0400, Height: 0.0250}},
	{GroupID: 26, DisplayName: "Right Foot (Lower Dorsum Inner)", BoundingBox: domain.NormalizedRect{X: 0.4400, Y: 0.9250, Width: 0.0400, Height: 0.0250}},
	{GroupID: 26, DisplayName: "Right Little Toe", BoundingBox: domain.NormalizedRect{X: 0.4000, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 26, DisplayName: "Right Fourth Toe", BoundingBox: domain.NormalizedRect{X: 0.4160, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 26, DisplayName: "Right Third Toe", BoundingBox: domain.NormalizedRect{X: 0.4320, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 26, DisplayName: "Right Second Toe", BoundingBox: domain.NormalizedRect{X: 0.4480, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 26, DisplayName: "Right Big Toe", BoundingBox: domain.NormalizedRect{X: 0.4640, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 27, DisplayName: "Left Foot (Upper Dorsum Inner)", BoundingBox: domain.NormalizedRect{X: 0.5200, Y: 0.9000, Width: 0.0400, Height: 0.0250}},
	{GroupID: 27, DisplayName: "Left Foot (Upper Dorsum Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.9000, Width: 0.0400, Height: 0.0250}},
	{GroupID: 27, DisplayName: "Left Foot (Lower Dorsum Inner)", BoundingBox: domain.NormalizedRect{X: 0.5200, Y: 0.9250, Width: 0.0400, Height: 0.0250}},
	{GroupID: 27, DisplayName: "Left Foot (Lower Dorsum Outer)", BoundingBox: domain.NormalizedRect{X: 0.5600, Y: 0.9250, Width: 0.0400, Height: 0.0250}},
	{GroupID: 27, DisplayName: "Left Big Toe", BoundingBox: domain.NormalizedRect{X: 0.5200, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 27, DisplayName: "Left Second Toe", BoundingBox: domain.NormalizedRect{X: 0.5360, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 27, DisplayName: "Left Third Toe", BoundingBox: domain.NormalizedRect{X: 0.5520, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 27, DisplayName: "Left Fourth Toe", BoundingBox: domain.NormalizedRect{X: 0.5680, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
	{GroupID: 27, DisplayName: "Left Little Toe", BoundingBox: domain.NormalizedRect{X: 0.5840, Y: 0.9500, Width: 0.0160, Height: 0.0250}, IsDetailVariant: true},
}
