package mirror

// Sparse68 is the 68-point iBUG/dlib scheme: jaw 0-16, brows 17-26,
// nose 27-35, eyes 36-47, outer lip 48-59, inner lip 60-67.
// Providers usually report it in pixel coordinates.
//
// The scheme has no forehead points, so the face outline closes along
// the brows.
var Sparse68 = newScheme("sparse68", 68, 0.3, map[Feature][]int{
	FeatureFaceOval: {
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		26, 25, 24, 23, 22, 21, 20, 19, 18, 17,
	},
	FeatureLipsOuter:      {48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59},
	FeatureLipsInner:      {60, 61, 62, 63, 64, 65, 66, 67},
	FeatureLowerLipCenter: {57, 66},

	FeatureRightEye: {36, 37, 38, 39, 40, 41},
	FeatureLeftEye:  {42, 43, 44, 45, 46, 47},

	FeatureRightUpperLid: {39, 38, 37, 36},
	FeatureLeftUpperLid:  {42, 43, 44, 45},

	FeatureRightBrow: {17, 18, 19, 20, 21},
	FeatureLeftBrow:  {26, 25, 24, 23, 22},

	FeatureRightBrowTail:  {17},
	FeatureLeftBrowTail:   {26},
	FeatureRightEyeOuter:  {36},
	FeatureLeftEyeOuter:   {45},
	FeatureRightLidReturn: {37},
	FeatureLeftLidReturn:  {44},

	// Midway between the outer eye corner and the jaw.
	FeatureRightCheek:     {36, 3},
	FeatureLeftCheek:      {45, 13},
	FeatureRightCheekbone: {36, 1},
	FeatureLeftCheekbone:  {45, 15},

	FeatureNoseBridge:    {27, 28, 29, 30},
	FeatureCupidsBow:     {51},
	FeatureRightBrowBone: {21},
	FeatureLeftBrowBone:  {22},

	FeatureFaceWidth:   {0, 16},
	FeatureCheekSample: {28, 29},
})
