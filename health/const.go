package health

import racp "github.com/StanfordSpezi/SpeziBluetooth-sub002"

// This file includes assigned numbers from the Bluetooth health
// service specs.

var (
	GlucoseServiceUUID       = racp.UUID16(0x1808)
	BloodPressureServiceUUID = racp.UUID16(0x1810)
	WeightScaleServiceUUID   = racp.UUID16(0x181D)

	RecordAccessControlPointUUID = racp.UUID16(0x2A52)

	GlucoseMeasurementUUID        = racp.UUID16(0x2A18)
	GlucoseMeasurementContextUUID = racp.UUID16(0x2A34)
	GlucoseFeatureUUID            = racp.UUID16(0x2A51)
	BloodPressureMeasurementUUID  = racp.UUID16(0x2A35)
	WeightMeasurementUUID         = racp.UUID16(0x2A9D)
)
