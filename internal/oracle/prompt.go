package oracle

import "encoding/json"

// extractionPrompt instructs the vision model to return the feature vector as
// strict JSON. Fields the model cannot judge are simply omitted; the
// normalizer defaults them downstream.
const extractionPrompt = `You are a dating-profile photo analyst. Examine the attached photo and reply with a single JSON object, no prose, in this shape:
{
  "features": {
    "quality": <0-100 clarity and resolution>,
    "aesthetics": <0-100 visual appeal>,
    "smileProb": <-50 to 120; negative if not smiling, 60 if no face is visible>,
    "gazeDeg": <0-90 degrees of deviation from direct camera gaze>,
    "redFlag": <true if the photo contains a content concern>,
    "petFlag": <true if a friendly animal is visible>,
    "filterStrength": <0-1 degree of artificial editing>,
    "numFaces": <count of visible people>,
    "postureScore": <-1 to 1 openness of body language>
  },
  "assessment": "<two-sentence candid assessment>",
  "photoType": "<one of: primary_headshot, full_body, hobby_activity, pet, group_social, generic>"
}
Omit any feature you cannot judge.`

// feedbackPrompt frames the coaching reply. The model answers with
// structured good/improvement points.
const feedbackPrompt = `You are a concise dating-photo coach who knows the evidence on what makes a successful dating-app photo. Based on the provided feature data, role, and score, reply with a single JSON object:
{"good_points": ["..."], "improvement_points": ["..."]}
Give 2-4 actionable points total. If the score is low you can be gently critical.`

// feedbackPayload serializes the scored photo for the feedback prompt.
func feedbackPayload(in FeedbackInput) string {
	b, _ := json.Marshal(in)
	return string(b)
}
