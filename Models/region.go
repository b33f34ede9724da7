package Models

// Region is one named anatomical area on the 3D selector. The catalog is
// static configuration, never persisted, immutable for the process lifetime.
type Region struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var RegionCatalog = []Region{
	{Key: "head", Label: "Head"},
	{Key: "neck", Label: "Neck"},
	{Key: "left_shoulder", Label: "Left Shoulder"},
	{Key: "right_shoulder", Label: "Right Shoulder"},
	{Key: "chest", Label: "Chest"},
	{Key: "abdomen", Label: "Abdomen"},
	{Key: "upper_back", Label: "Upper Back"},
	{Key: "lower_back", Label: "Lower Back"},
	{Key: "left_arm", Label: "Left Arm"},
	{Key: "right_arm", Label: "Right Arm"},
	{Key: "left_elbow", Label: "Left Elbow"},
	{Key: "right_elbow", Label: "Right Elbow"},
	{Key: "left_hand", Label: "Left Hand"},
	{Key: "right_hand", Label: "Right Hand"},
	{Key: "left_hip", Label: "Left Hip"},
	{Key: "right_hip", Label: "Right Hip"},
	{Key: "left_thigh", Label: "Left Thigh"},
	{Key: "right_thigh", Label: "Right Thigh"},
	{Key: "left_knee", Label: "Left Knee"},
	{Key: "right_knee", Label: "Right Knee"},
	{Key: "left_leg", Label: "Left Leg"},
	{Key: "right_leg", Label: "Right Leg"},
	{Key: "left_foot", Label: "Left Foot"},
	{Key: "right_foot", Label: "Right Foot"},
}

func RegionExists(key string) bool {
	for _, region := range RegionCatalog {
		if region.Key == key {
			return true
		}
	}
	return false
}
